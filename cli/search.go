package cli

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/sanketrautel17-hash/Home-Cleaning-Service/models"
)

// runSearch is the service search page: filters map one-to-one onto
// /services/search query parameters, results render as cards.
func (a *App) runSearch(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	category := fs.String("category", "", "service category")
	minPrice := fs.Float64("min-price", -1, "minimum price")
	maxPrice := fs.Float64("max-price", -1, "maximum price")
	priceType := fs.String("price-type", "", "pricing model: flat, per_hour, per_sqft")
	sortBy := fs.String("sort", "", "sort: price_low, price_high, newest, duration")
	limit := fs.Int("limit", 20, "max results")
	skip := fs.Int("skip", 0, "result offset")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *category != "" && !models.ValidCategory(*category) {
		return fmt.Errorf("invalid category %q (one of: regular, deep, move_in_out, office, specialized)", *category)
	}
	if *priceType != "" && !models.ValidPriceType(*priceType) {
		return fmt.Errorf("invalid price type %q (one of: flat, per_hour, per_sqft)", *priceType)
	}

	filter := models.ServiceSearchFilter{
		Category:  *category,
		PriceType: *priceType,
		SortBy:    *sortBy,
		Skip:      *skip,
		Limit:     *limit,
	}
	if *minPrice >= 0 {
		filter.MinPrice = *minPrice
		filter.HasMin = true
	}
	if *maxPrice >= 0 {
		filter.MaxPrice = *maxPrice
		filter.HasMax = true
	}

	results, err := a.API.SearchServices(ctx, filter)
	if err != nil {
		return err
	}
	if len(results.Services) == 0 {
		fmt.Fprintln(a.Out, "No services matched your filters.")
		return nil
	}

	a.renderServiceTable(results.Services)
	fmt.Fprintf(a.Out, "\nBook with: cleanhome book -service <id>\n")
	return nil
}

func (a *App) renderServiceTable(services []models.Service) {
	w := tabwriter.NewWriter(a.Out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tTYPE\tHOURS\tACTIVE")
	for _, s := range services {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%s\t%.1f\t%t\n",
			s.ID, s.Name, s.Category, s.Price, s.PriceType, s.DurationHours, s.IsActive)
	}
	w.Flush()
}
