package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mishasvintus/social_network/internal/domain"
	"github.com/mishasvintus/social_network/internal/seed"
	"github.com/mishasvintus/social_network/internal/service"
)

// CLI flags parsed from command line.
type cliFlags struct {
	SeedFile     string
	MaxUsers     int
	MaxFollowees int
	Recommend    string
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	var flags cliFlags

	fs := flag.NewFlagSet("netctl", flag.ContinueOnError)
	fs.StringVar(&flags.SeedFile, "seed", "", "path to a YAML network fixture (required)")
	fs.IntVar(&flags.MaxUsers, "max-users", domain.DefaultMaxUsers, "maximum number of users")
	fs.IntVar(&flags.MaxFollowees, "max-followees", domain.DefaultMaxFollowees, "maximum followees per user")
	fs.StringVar(&flags.Recommend, "recommend", "", "only print the recommendation for this user")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if flags.SeedFile == "" {
		return errors.New("-seed is required")
	}

	fixture, err := seed.LoadFile(flags.SeedFile)
	if err != nil {
		return err
	}

	svc, err := service.NewNetworkService(domain.NewNetwork(flags.MaxUsers, flags.MaxFollowees), 0)
	if err != nil {
		return err
	}
	if err := seed.Apply(fixture, svc); err != nil {
		return err
	}

	if flags.Recommend != "" {
		return printRecommendation(out, svc, flags.Recommend)
	}

	fmt.Fprintln(out, svc.Render())
	fmt.Fprintln(out)

	if name, followers, err := svc.MostPopular(); err == nil {
		fmt.Fprintf(out, "Most popular: %s (%d followers)\n", name, followers)
	} else {
		fmt.Fprintln(out, "Most popular: none")
	}

	for _, u := range svc.ListUsers() {
		if err := printRecommendation(out, svc, u.Name); err != nil {
			return err
		}
	}
	return nil
}

func printRecommendation(out io.Writer, svc *service.NetworkService, name string) error {
	rec, err := svc.Recommend(name)
	switch {
	case errors.Is(err, service.ErrNoRecommendation):
		fmt.Fprintf(out, "%s should follow: nobody\n", domain.NormalizeName(name))
		return nil
	case err != nil:
		return fmt.Errorf("recommend for %q: %w", name, err)
	}
	fmt.Fprintf(out, "%s should follow: %s\n", domain.NormalizeName(name), rec)
	return nil
}
