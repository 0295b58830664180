// Package seed loads the sample developer events shown on the landing page.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"devevents/internal/domain"
	"devevents/internal/services"
)

// Events returns fresh copies of the sample events. Date and time are given in the
// loose formats editors type; the normal create path normalizes them.
func Events() []*domain.Event {
	return []*domain.Event{
		{
			Title:       "React Summit 2025",
			Description: "The biggest React conference worldwide, two days of talks on the React ecosystem.",
			Overview:    "Talks, workshops and discussion panels covering React, Next.js, state management and testing.",
			Image:       "/images/event1.png",
			Venue:       "Taets Art & Event Park",
			Location:    "Amsterdam, Netherlands",
			Date:        "Nov 12, 2025",
			Time:        "09:00",
			Mode:        domain.ModeHybrid,
			Audience:    "Frontend and full-stack developers",
			Agenda:      []string{"Opening keynote", "React Server Components deep dive", "Lightning talks", "Closing panel"},
			Organizer:   "GitNation",
			Tags:        []string{"react", "frontend", "javascript"},
		},
		{
			Title:       "JSConf EU 2025",
			Description: "A community conference about JavaScript and the web platform.",
			Overview:    "Single-track talks from language designers, tool authors and practitioners.",
			Image:       "/images/event2.png",
			Venue:       "Arena Berlin",
			Location:    "Berlin, Germany",
			Date:        "Dec 4, 2025",
			Time:        "10:00",
			Mode:        domain.ModeOffline,
			Audience:    "JavaScript developers",
			Agenda:      []string{"Keynote", "Language track", "Tooling track", "Community party"},
			Organizer:   "JSConf EU",
			Tags:        []string{"javascript", "web", "frontend"},
		},
		{
			Title:       "Next.js Conf 2025",
			Description: "The annual conference for the Next.js framework and its community.",
			Overview:    "Product announcements, case studies and hands-on sessions on building with Next.js.",
			Image:       "/images/event3.png",
			Venue:       "SVN West",
			Location:    "San Francisco, CA, USA",
			Date:        "Mar 3, 2026",
			Time:        "9:30 AM",
			Mode:        domain.ModeHybrid,
			Audience:    "React and Next.js developers",
			Agenda:      []string{"Keynote", "App Router in production", "Edge rendering", "Q&A"},
			Organizer:   "Vercel",
			Tags:        []string{"nextjs", "react", "frontend"},
		},
		{
			Title:       "KubeCon 2026",
			Description: "The flagship conference of the Cloud Native Computing Foundation.",
			Overview:    "Maintainer tracks, end-user stories and hallway conversations about Kubernetes and friends.",
			Image:       "/images/event4.png",
			Venue:       "Fira Gran Via",
			Location:    "Barcelona, Spain",
			Date:        "Feb 20, 2026",
			Time:        "8:30 AM",
			Mode:        domain.ModeOffline,
			Audience:    "Platform engineers and SREs",
			Agenda:      []string{"Keynotes", "Maintainer track", "Security day", "Project pavilion"},
			Organizer:   "CNCF",
			Tags:        []string{"kubernetes", "cloud", "devops"},
		},
		{
			Title:       "ETHGlobal Hack 2026",
			Description: "A multi-day hackathon for builders of decentralized applications.",
			Overview:    "Form a team, build a project over the weekend and demo it to sponsors and judges.",
			Image:       "/images/event5.png",
			Venue:       "LX Factory",
			Location:    "Lisbon, Portugal",
			Date:        "Jan 15, 2026",
			Time:        "18:00",
			Mode:        domain.ModeHybrid,
			Audience:    "Web3 developers and designers",
			Agenda:      []string{"Opening ceremony", "Team formation", "Hacking", "Demos and prizes"},
			Organizer:   "ETHGlobal",
			Tags:        []string{"web3", "ethereum", "hackathon"},
		},
		{
			Title:       "Hack the North 2026",
			Description: "Canada's biggest student hackathon.",
			Overview:    "Thirty-six hours of building, workshops and mentorship for student hackers.",
			Image:       "/images/event6.png",
			Venue:       "University of Waterloo",
			Location:    "Waterloo, ON, Canada",
			Date:        "Sep 18, 2026",
			Time:        "7:00 PM",
			Mode:        domain.ModeOffline,
			Audience:    "Students",
			Agenda:      []string{"Opening ceremony", "Workshops", "Hacking", "Judging"},
			Organizer:   "Hack the North",
			Tags:        []string{"hackathon", "students"},
		},
		{
			Title:       "Vue.js Amsterdam 2026",
			Description: "The world's largest Vue.js conference.",
			Overview:    "Core team talks and community sessions on Vue, Nuxt and Vite.",
			Image:       "/images/event-full.png",
			Venue:       "Theater Amsterdam",
			Location:    "Amsterdam, Netherlands",
			Date:        "May 8, 2026",
			Time:        "09:00",
			Mode:        domain.ModeOffline,
			Audience:    "Vue developers",
			Agenda:      []string{"State of Vue", "Nuxt workshop", "Vite internals"},
			Organizer:   "Vue.js Amsterdam",
			Tags:        []string{"vue", "frontend", "javascript"},
		},
		{
			Title:       "Dev Day: Local NYC 2025",
			Description: "An evening meetup for developers in New York.",
			Overview:    "Short talks followed by networking and pizza.",
			Image:       "/images/event1.png",
			Venue:       "Civic Hall",
			Location:    "New York, NY, USA",
			Date:        "Nov 28, 2025",
			Time:        "6:30 PM",
			Mode:        domain.ModeOffline,
			Audience:    "Local developers",
			Agenda:      []string{"Welcome", "Lightning talks", "Networking"},
			Organizer:   "NYC Dev Community",
			Tags:        []string{"meetup", "community"},
		},
	}
}

// Result summarizes a Run.
type Result struct {
	Created int
	Skipped int
}

// Run creates every sample event whose title-derived slug is not taken yet, so it can
// be re-run safely.
func Run(ctx context.Context, svc domain.EventService, logger *slog.Logger) (Result, error) {
	var res Result
	for _, e := range Events() {
		slug := services.Slugify(e.Title)
		_, err := svc.GetEventBySlug(ctx, slug)
		switch {
		case err == nil:
			res.Skipped++
			logger.InfoContext(ctx, "seed event exists", "slug", slug)
			continue
		case !errors.Is(err, domain.ErrNotFound):
			return res, fmt.Errorf("look up %q: %w", slug, err)
		}

		created, err := svc.CreateEvent(ctx, e)
		if err != nil {
			return res, fmt.Errorf("create %q: %w", e.Title, err)
		}
		res.Created++
		logger.InfoContext(ctx, "seed event created", "slug", created.Slug)
	}
	return res, nil
}
