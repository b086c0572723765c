package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/sanketrautel17-hash/Home-Cleaning-Service/models"
)

// runCleaner dispatches the cleaner-side pages: profile onboarding,
// listing management and the job queue.
func (a *App) runCleaner(ctx context.Context, args []string) error {
	if err := a.requireUser(); err != nil {
		return err
	}
	if !a.Session.User().IsCleaner() {
		return fmt.Errorf("cleaner tools require a cleaner account")
	}
	if len(args) == 0 {
		fmt.Fprintln(a.Out, "Usage: cleanhome cleaner <onboard|profile|update|services|jobs>")
		return nil
	}

	switch args[0] {
	case "onboard":
		return a.runCleanerOnboard(ctx, args[1:], false)
	case "update":
		return a.runCleanerOnboard(ctx, args[1:], true)
	case "profile":
		return a.runCleanerProfile(ctx)
	case "services":
		return a.runCleanerServices(ctx, args[1:])
	case "jobs":
		return a.runCleanerJobs(ctx, args[1:])
	default:
		return fmt.Errorf("unknown cleaner command %q", args[0])
	}
}

func (a *App) runCleanerOnboard(ctx context.Context, args []string, update bool) error {
	fs := flag.NewFlagSet("cleaner onboard", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	city := fs.String("city", "", "city (required)")
	bio := fs.String("bio", "", "professional bio")
	years := fs.Int("experience", 0, "years of experience")
	specs := fs.String("specializations", "", "comma-separated categories")
	state := fs.String("state", "", "state")
	pincode := fs.String("pincode", "", "postal code")
	radius := fs.Float64("radius", 10, "service radius in km")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if len(*city) < 2 {
		return fmt.Errorf("-city is required")
	}
	if *years < 0 || *years > 50 {
		return fmt.Errorf("experience must be between 0 and 50 years")
	}
	var specializations []string
	if *specs != "" {
		for _, s := range strings.Split(*specs, ",") {
			s = strings.TrimSpace(s)
			if !models.ValidCategory(s) {
				return fmt.Errorf("invalid specialization %q", s)
			}
			specializations = append(specializations, s)
		}
	}

	input := models.CleanerProfileInput{
		Bio:             *bio,
		ExperienceYears: *years,
		Specializations: specializations,
		City:            *city,
		State:           *state,
		Pincode:         *pincode,
		ServiceRadiusKm: *radius,
	}

	var (
		profile *models.CleanerProfile
		err     error
	)
	if update {
		profile, err = a.API.UpdateCleanerProfile(ctx, input)
	} else {
		profile, err = a.API.CreateCleanerProfile(ctx, input)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Profile saved: %s, %d years", profile.City, profile.ExperienceYears)
	if len(profile.Specializations) > 0 {
		fmt.Fprintf(a.Out, " (%s)", strings.Join(profile.Specializations, ", "))
	}
	fmt.Fprintln(a.Out)
	return nil
}

func (a *App) runCleanerProfile(ctx context.Context) error {
	profile, err := a.API.MyCleanerProfile(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "City:            %s\n", profile.City)
	fmt.Fprintf(a.Out, "Experience:      %d years\n", profile.ExperienceYears)
	if profile.Bio != "" {
		fmt.Fprintf(a.Out, "Bio:             %s\n", profile.Bio)
	}
	if len(profile.Specializations) > 0 {
		fmt.Fprintf(a.Out, "Specializations: %s\n", strings.Join(profile.Specializations, ", "))
	}
	if profile.TotalReviews > 0 {
		fmt.Fprintf(a.Out, "Rating:          %.1f/5 (%d reviews)\n", profile.Rating, profile.TotalReviews)
	}
	return nil
}

func (a *App) runCleanerServices(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	switch args[0] {
	case "list":
		list, err := a.API.MyServices(ctx)
		if err != nil {
			return err
		}
		if len(list.Services) == 0 {
			fmt.Fprintln(a.Out, "No listings yet. Add one with: cleanhome cleaner services add")
			return nil
		}
		a.renderServiceTable(list.Services)
		return nil
	case "add":
		return a.runCleanerServiceAdd(ctx, args[1:])
	case "update":
		return a.runCleanerServiceUpdate(ctx, args[1:])
	case "remove":
		if len(args) != 2 {
			return fmt.Errorf("usage: cleanhome cleaner services remove <id>")
		}
		if err := a.API.DeleteService(ctx, args[1]); err != nil {
			return err
		}
		fmt.Fprintln(a.Out, "Listing removed.")
		return nil
	default:
		return fmt.Errorf("unknown services command %q", args[0])
	}
}

func (a *App) runCleanerServiceAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("cleaner services add", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	name := fs.String("name", "", "service name")
	desc := fs.String("description", "", "service description")
	category := fs.String("category", "regular", "service category")
	price := fs.Float64("price", 0, "price")
	priceType := fs.String("price-type", "flat", "pricing model")
	hours := fs.Float64("hours", 1, "estimated duration in hours")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if len(*name) < 3 {
		return fmt.Errorf("service name must be at least 3 characters")
	}
	if !models.ValidCategory(*category) {
		return fmt.Errorf("invalid category %q", *category)
	}
	if !models.ValidPriceType(*priceType) {
		return fmt.Errorf("invalid price type %q", *priceType)
	}
	if *price < 0 {
		return fmt.Errorf("price cannot be negative")
	}
	if *hours < 0.5 || *hours > 24 {
		return fmt.Errorf("duration must be between 0.5 and 24 hours")
	}

	service, err := a.API.CreateService(ctx, models.CreateServiceInput{
		Name:          *name,
		Description:   *desc,
		Category:      *category,
		Price:         *price,
		PriceType:     *priceType,
		DurationHours: *hours,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Listed %q (%s) at %.2f %s, ID %s\n",
		service.Name, service.Category, service.Price, service.PriceType, service.ID)
	return nil
}

func (a *App) runCleanerServiceUpdate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("cleaner services update", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	name := fs.String("name", "", "service name")
	price := fs.Float64("price", -1, "price")
	active := fs.String("active", "", "true or false")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) != 1 {
		return fmt.Errorf("usage: cleanhome cleaner services update <id> [flags]")
	}

	// Only flags the cleaner set are sent; the backend leaves the rest.
	var input models.UpdateServiceInput
	if *name != "" {
		input.Name = name
	}
	if *price >= 0 {
		input.Price = price
	}
	switch *active {
	case "":
	case "true":
		v := true
		input.IsActive = &v
	case "false":
		v := false
		input.IsActive = &v
	default:
		return fmt.Errorf("-active must be true or false")
	}

	service, err := a.API.UpdateService(ctx, rest[0], input)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Updated %q (active: %t)\n", service.Name, service.IsActive)
	return nil
}

// runCleanerJobs lists job requests and, with -watch, accepts
// transition commands interactively; confirmed transitions update the
// rendered list in place from the server's echo rather than refetching.
func (a *App) runCleanerJobs(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("cleaner jobs", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	status := fs.String("status", "", "filter by status")
	interactive := fs.Bool("watch", false, "apply status changes interactively")
	if err := fs.Parse(args); err != nil {
		return err
	}

	list, err := a.API.CleanerBookings(ctx, *status, 0, 50)
	if err != nil {
		return err
	}
	if len(list.Bookings) == 0 {
		fmt.Fprintln(a.Out, "No job requests.")
		return nil
	}
	a.renderBookingTable(list.Bookings, models.RoleCleaner)

	if !*interactive {
		return nil
	}

	bookings := list.Bookings
	for {
		line, err := a.promptLine("\n<booking-id> <status> (empty to quit)")
		if err != nil || line == "" {
			return nil
		}
		parts := strings.Fields(line)
		if len(parts) != 2 {
			fmt.Fprintln(a.Out, "Expected: <booking-id> <status>")
			continue
		}

		updated, err := a.API.UpdateBookingStatus(ctx, parts[0], models.UpdateBookingStatusInput{Status: parts[1]})
		if err != nil {
			fmt.Fprintln(a.Out, err.Error())
			continue
		}
		bookings = applyStatusUpdate(bookings, updated)
		a.renderBookingTable(bookings, models.RoleCleaner)
	}
}
