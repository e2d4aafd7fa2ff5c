// internal/app/system/seeding/seeding.go
package seeding

import (
	"context"
	"time"

	portfoliostore "github.com/optimalsolutions/siteapi/internal/app/store/portfolio"
	servicestore "github.com/optimalsolutions/siteapi/internal/app/store/services"
	testimonialstore "github.com/optimalsolutions/siteapi/internal/app/store/testimonials"
	"github.com/optimalsolutions/siteapi/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// SeedAll seeds default catalog data if not already present. Each
// collection is seeded only when it is completely empty, so curated
// production data is never touched.
func SeedAll(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	if err := seedServices(ctx, db, logger); err != nil {
		return err
	}
	if err := seedPortfolioItems(ctx, db, logger); err != nil {
		return err
	}
	if err := seedTestimonials(ctx, db, logger); err != nil {
		return err
	}
	return nil
}

// seedServices creates the default service offerings if the collection is empty.
func seedServices(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	store := servicestore.New(db)

	count, err := store.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	defaultServices := []models.Service{
		{
			ServiceID:        "web-development",
			Title:            "Web Application Development",
			ShortDescription: "Custom web applications built for scale and maintainability.",
			FullDescription:  "We design and build web applications end to end, from initial architecture through launch and ongoing support. Our teams work in modern stacks and deliver software with automated testing and CI/CD baked in from day one.",
			Icon:             "code",
			KeyBenefits: []string{
				"Architecture designed for your growth trajectory",
				"Automated testing and deployment pipelines",
				"Accessible, responsive interfaces",
			},
			Deliverables: []string{
				"Production application with source code",
				"Infrastructure-as-code deployment setup",
				"Technical documentation and handoff sessions",
			},
			Technologies: []string{"Go", "TypeScript", "React", "PostgreSQL", "MongoDB"},
			PricingTier:  "project",
		},
		{
			ServiceID:        "cloud-migration",
			Title:            "Cloud Migration",
			ShortDescription: "Move legacy workloads to the cloud without disrupting the business.",
			FullDescription:  "We assess your current infrastructure, design a target cloud architecture, and execute the migration in phases that keep production running. Cost modeling and rightsizing are part of every engagement.",
			Icon:             "cloud",
			KeyBenefits: []string{
				"Phased migration with rollback points",
				"Cost modeling before any workload moves",
				"Security and compliance review included",
			},
			Deliverables: []string{
				"Migration roadmap and risk assessment",
				"Migrated workloads with monitoring in place",
				"Runbooks for the new environment",
			},
			Technologies: []string{"AWS", "Terraform", "Kubernetes", "Docker"},
			PricingTier:  "project",
		},
		{
			ServiceID:        "data-engineering",
			Title:            "Data Engineering",
			ShortDescription: "Reliable pipelines that turn raw data into decisions.",
			FullDescription:  "From ingestion to warehousing to dashboards, we build data platforms that analysts trust. Pipelines are versioned, tested, and monitored like any other production software.",
			Icon:             "database",
			KeyBenefits: []string{
				"Single source of truth for reporting",
				"Pipelines with data quality checks",
				"Self-serve analytics for your teams",
			},
			Deliverables: []string{
				"Ingestion and transformation pipelines",
				"Warehouse schema and documentation",
				"Dashboard suite for key metrics",
			},
			Technologies: []string{"Python", "dbt", "Snowflake", "Airflow"},
			PricingTier:  "retainer",
		},
		{
			ServiceID:        "technical-consulting",
			Title:            "Technical Consulting",
			ShortDescription: "Senior engineering guidance for teams at an inflection point.",
			FullDescription:  "Architecture reviews, technology selection, and hands-on mentoring for engineering teams. We embed with your team for focused engagements and leave behind practices, not just recommendations.",
			Icon:             "compass",
			KeyBenefits: []string{
				"Independent review of architecture decisions",
				"Concrete, prioritized recommendations",
				"Mentoring that stays after we leave",
			},
			Deliverables: []string{
				"Written assessment with prioritized findings",
				"Decision records for key choices",
				"Follow-up review after implementation",
			},
			Technologies: []string{"Go", "AWS", "Kubernetes", "PostgreSQL"},
			PricingTier:  "hourly",
		},
	}

	for i := range defaultServices {
		defaultServices[i].Active = true
		defaultServices[i].CreatedAt = now
		defaultServices[i].UpdatedAt = now
		if err := store.Insert(ctx, defaultServices[i]); err != nil {
			return err
		}
		logger.Info("seeded service", zap.String("id", defaultServices[i].ServiceID))
	}
	return nil
}

// seedPortfolioItems creates the default case studies if the collection is empty.
func seedPortfolioItems(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	store := portfoliostore.New(db)

	count, err := store.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	defaultItems := []models.PortfolioItem{
		{
			PortfolioID: "meridian-logistics-platform",
			Title:       "Logistics Platform Rebuild",
			Client:      "Meridian Freight",
			Industry:    "logistics",
			Challenge:   "A decade-old dispatch system could no longer keep up with order volume, and outages were costing missed deliveries every week.",
			Solution:    "We rebuilt the dispatch core as a set of Go services backed by PostgreSQL, migrated historical data without downtime, and added real-time tracking for drivers and customers.",
			Results: []models.PortfolioResult{
				{Metric: "Order processing time", Value: "-78%"},
				{Metric: "Unplanned outages", Value: "0 in first year"},
				{Metric: "Peak orders per day", Value: "4x previous capacity"},
			},
			Testimonial: models.PortfolioTestimonial{
				Text:     "The new platform handled our busiest season without a single incident. That had never happened before.",
				Author:   "Dana Whitfield",
				Position: "VP of Operations, Meridian Freight",
			},
			Images:       []string{"/images/portfolio/meridian-dashboard.jpg"},
			Technologies: []string{"Go", "PostgreSQL", "Kafka", "React"},
			Duration:     "9 months",
			TeamSize:     6,
			Year:         "2024",
			ServiceType:  "web-development",
			Featured:     true,
		},
		{
			PortfolioID: "harborview-cloud-migration",
			Title:       "Hospital Group Cloud Migration",
			Client:      "Harborview Health",
			Industry:    "healthcare",
			Challenge:   "On-premise infrastructure was approaching end of life, and compliance requirements ruled out a lift-and-shift approach.",
			Solution:    "We designed a HIPAA-aligned AWS landing zone and migrated forty workloads in phases, re-platforming the highest-traffic systems onto managed services along the way.",
			Results: []models.PortfolioResult{
				{Metric: "Infrastructure cost", Value: "-34% annually"},
				{Metric: "Deployment frequency", Value: "Weekly from quarterly"},
				{Metric: "Audit findings", Value: "Zero critical"},
			},
			Testimonial: models.PortfolioTestimonial{
				Text:     "They treated our compliance constraints as design inputs, not obstacles. The audit went smoother than any before the migration.",
				Author:   "Marcus Oyelaran",
				Position: "CIO, Harborview Health",
			},
			Images:       []string{"/images/portfolio/harborview-architecture.jpg"},
			Technologies: []string{"AWS", "Terraform", "Kubernetes"},
			Duration:     "12 months",
			TeamSize:     5,
			Year:         "2023",
			ServiceType:  "cloud-migration",
			Featured:     true,
		},
		{
			PortfolioID: "brightline-analytics",
			Title:       "Retail Analytics Pipeline",
			Client:      "Brightline Retail Group",
			Industry:    "retail",
			Challenge:   "Sales data lived in a dozen spreadsheets and three point-of-sale systems, and monthly reporting took a full week of manual work.",
			Solution:    "We consolidated every source into a governed warehouse with tested dbt models, then built dashboards that refresh hourly instead of monthly.",
			Results: []models.PortfolioResult{
				{Metric: "Report preparation", Value: "1 week to 1 hour"},
				{Metric: "Data sources unified", Value: "15"},
			},
			Testimonial: models.PortfolioTestimonial{
				Text:     "For the first time, every team is looking at the same numbers.",
				Author:   "Priya Chandrasekaran",
				Position: "Director of Analytics, Brightline",
			},
			Images:       []string{"/images/portfolio/brightline-dashboards.jpg"},
			Technologies: []string{"Python", "dbt", "Snowflake", "Airflow"},
			Duration:     "5 months",
			TeamSize:     3,
			Year:         "2024",
			ServiceType:  "data-engineering",
			Featured:     false,
		},
	}

	for i := range defaultItems {
		defaultItems[i].Active = true
		defaultItems[i].CreatedAt = now
		defaultItems[i].UpdatedAt = now
		if err := store.Insert(ctx, defaultItems[i]); err != nil {
			return err
		}
		logger.Info("seeded portfolio item", zap.String("id", defaultItems[i].PortfolioID))
	}
	return nil
}

// seedTestimonials creates the default testimonials if the collection is empty.
func seedTestimonials(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	store := testimonialstore.New(db)

	count, err := store.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	defaultTestimonials := []models.Testimonial{
		{
			TestimonialID: "dana-whitfield-meridian",
			ClientName:    "Dana Whitfield",
			Position:      "VP of Operations",
			Company:       "Meridian Freight",
			Rating:        5,
			Text:          "The team delivered a platform that handled our busiest season without a single incident. Communication was clear from kickoff to handoff.",
			Avatar:        "/images/avatars/dana-whitfield.jpg",
			ProjectRef:    "meridian-logistics-platform",
			Featured:      true,
		},
		{
			TestimonialID: "marcus-oyelaran-harborview",
			ClientName:    "Marcus Oyelaran",
			Position:      "CIO",
			Company:       "Harborview Health",
			Rating:        5,
			Text:          "A cloud migration in healthcare is high stakes. They earned our trust early and kept it through every phase.",
			Avatar:        "/images/avatars/marcus-oyelaran.jpg",
			ProjectRef:    "harborview-cloud-migration",
			Featured:      true,
		},
		{
			TestimonialID: "priya-chandrasekaran-brightline",
			ClientName:    "Priya Chandrasekaran",
			Position:      "Director of Analytics",
			Company:       "Brightline Retail Group",
			Rating:        4,
			Text:          "Our reporting went from a week of spreadsheet wrangling to an hour of review. The handoff documentation was the best I have seen from a vendor.",
			Avatar:        "/images/avatars/priya-chandrasekaran.jpg",
			ProjectRef:    "brightline-analytics",
			Featured:      false,
		},
	}

	for i := range defaultTestimonials {
		defaultTestimonials[i].Active = true
		defaultTestimonials[i].CreatedAt = now
		defaultTestimonials[i].UpdatedAt = now
		if err := store.Insert(ctx, defaultTestimonials[i]); err != nil {
			return err
		}
		logger.Info("seeded testimonial", zap.String("id", defaultTestimonials[i].TestimonialID))
	}
	return nil
}
