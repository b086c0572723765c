package cli

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/sanketrautel17-hash/Home-Cleaning-Service/client"
)

// parseLatLon splits a "lat,lon" pair and checks coordinate bounds.
func parseLatLon(value string) (float64, float64, error) {
	parts := strings.SplitN(value, ",", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("-near must be lat,lon")
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil || lat < -90 || lat > 90 {
		return 0, 0, fmt.Errorf("latitude must be a number between -90 and 90")
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil || lon < -180 || lon > 180 {
		return 0, 0, fmt.Errorf("longitude must be a number between -180 and 180")
	}
	return lat, lon, nil
}

// runCleaners is the customer-facing cleaner directory: without an
// argument it searches profiles, with a user ID it shows one cleaner's
// profile and their active listings.
func (a *App) runCleaners(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("cleaners", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	city := fs.String("city", "", "filter by city")
	specialization := fs.String("specialization", "", "filter by specialization")
	near := fs.String("near", "", "geospatial search around lat,lon")
	radius := fs.Float64("radius", 10, "search radius in km (with -near)")
	limit := fs.Int("limit", 20, "max results")
	skip := fs.Int("skip", 0, "result offset")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if rest := fs.Args(); len(rest) == 1 {
		return a.runCleanerView(ctx, rest[0])
	}

	var list *client.CleanerList
	var err error
	if *near != "" {
		lat, lon, perr := parseLatLon(*near)
		if perr != nil {
			return perr
		}
		list, err = a.API.NearbyCleaners(ctx, lat, lon, *radius, *limit)
	} else {
		list, err = a.API.SearchCleaners(ctx, *city, *specialization, *skip, *limit)
	}
	if err != nil {
		return err
	}
	if len(list.Cleaners) == 0 {
		fmt.Fprintln(a.Out, "No cleaners matched your filters.")
		return nil
	}

	w := tabwriter.NewWriter(a.Out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "USER\tCITY\tEXPERIENCE\tRATING\tSPECIALIZATIONS")
	for _, c := range list.Cleaners {
		rating := "-"
		if c.TotalReviews > 0 {
			rating = fmt.Sprintf("%.1f (%d)", c.Rating, c.TotalReviews)
		}
		fmt.Fprintf(w, "%s\t%s\t%dy\t%s\t%s\n",
			c.UserID, c.City, c.ExperienceYears, rating, strings.Join(c.Specializations, ","))
	}
	w.Flush()
	fmt.Fprintf(a.Out, "\nView one with: cleanhome cleaners <user-id>\n")
	return nil
}

func (a *App) runCleanerView(ctx context.Context, userID string) error {
	profile, err := a.API.GetCleanerProfile(ctx, userID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.Out, "Cleaner %s\n", profile.UserID)
	fmt.Fprintf(a.Out, "  City:       %s\n", profile.City)
	fmt.Fprintf(a.Out, "  Experience: %d years\n", profile.ExperienceYears)
	if len(profile.Specializations) > 0 {
		fmt.Fprintf(a.Out, "  Focus:      %s\n", strings.Join(profile.Specializations, ", "))
	}
	if profile.TotalReviews > 0 {
		fmt.Fprintf(a.Out, "  Rating:     %.1f/5 (%d reviews)\n", profile.Rating, profile.TotalReviews)
	}
	if profile.Bio != "" {
		fmt.Fprintf(a.Out, "  Bio:        %s\n", profile.Bio)
	}

	services, err := a.API.CleanerServices(ctx, userID)
	if err != nil {
		return err
	}
	if len(services.Services) > 0 {
		fmt.Fprintln(a.Out, "\nListings:")
		a.renderServiceTable(services.Services)
	}
	fmt.Fprintf(a.Out, "\nReviews: cleanhome reviews %s\n", userID)
	return nil
}
