package model

// Seed data: the hand-authored initial collections used when a key has never
// been written, or whenever a stored value fails shape validation.

// SeedUsers returns the demo accounts. Credentials are intentionally trivial.
func SeedUsers() []User {
	return []User{
		{
			ID:       "u-admin",
			Name:     "SiteFix Admin",
			Email:    "admin@sitefix.com",
			Role:     RoleAdmin,
			Password: "admin",
			Avatar:   "/img/avatars/admin.png",
		},
		{
			ID:       "u-demo",
			Name:     "Demo Client",
			Email:    "client@sitefix.com",
			Role:     RoleUser,
			Password: "client",
			Avatar:   "/img/avatars/client.png",
		},
	}
}

// SeedProducts returns the starter shop catalog.
func SeedProducts() []Product {
	return []Product{
		{
			ID:          "p-landing-kit",
			Name:        "Landing Page Kit",
			Price:       "149",
			Description: "One-page marketing site template with copy guidance and launch checklist.",
			Image:       "/img/products/landing-kit.jpg",
			Category:    "templates",
		},
		{
			ID:          "p-seo-audit",
			Name:        "SEO Audit Report",
			Price:       "99",
			Description: "Manual crawl, keyword gap analysis and a prioritized fix list for one domain.",
			Image:       "/img/products/seo-audit.jpg",
			Category:    "services",
		},
		{
			ID:          "p-brand-pack",
			Name:        "Brand Starter Pack",
			Price:       "249",
			Description: "Logo refresh, color system and social media asset set.",
			Image:       "/img/products/brand-pack.jpg",
			Category:    "design",
		},
	}
}

// SeedPosts returns the starter blog content.
func SeedPosts() []Post {
	return []Post{
		{
			ID:      "post-launch-checklist",
			Title:   "The 10-Point Website Launch Checklist",
			Excerpt: "Everything we verify before a client site goes live.",
			Content: "<p>Before any SiteFix project ships, it passes this checklist...</p>",
			Status:  ContentStatusPublished,
			Views:   0,
			Date:    "2024-01-15",
			Author:  "SiteFix Admin",
		},
		{
			ID:      "post-speed-matters",
			Title:   "Why Page Speed Still Wins Customers",
			Excerpt: "Slow sites bleed conversions. Here is what to fix first.",
			Content: "<p>Every extra second of load time costs you visitors...</p>",
			Status:  ContentStatusPublished,
			Views:   0,
			Date:    "2024-02-02",
			Author:  "SiteFix Admin",
		},
	}
}

// SeedTeam returns the agency bios.
func SeedTeam() []TeamMember {
	return []TeamMember{
		{
			ID:    "tm-lena",
			Name:  "Lena Ortiz",
			Role:  "Founder & Lead Designer",
			Bio:   "Ten years of brand and web design for small businesses.",
			Image: "/img/team/lena.jpg",
			Socials: SocialLinks{
				Twitter:  "https://twitter.com/lenaortizdesign",
				LinkedIn: "https://linkedin.com/in/lenaortiz",
			},
		},
		{
			ID:    "tm-marc",
			Name:  "Marc Webb",
			Role:  "Full-Stack Developer",
			Bio:   "Builds fast, accessible sites and the tooling behind them.",
			Image: "/img/team/marc.jpg",
			Socials: SocialLinks{
				GitHub: "https://github.com/marcwebb",
			},
		},
	}
}

// SeedPaymentAccounts returns the default payout destinations shown at checkout.
func SeedPaymentAccounts() []PaymentAccount {
	return []PaymentAccount{
		{
			ID:           "pa-payoneer",
			Type:         PaymentAccountPayoneer,
			Name:         "SiteFix Payoneer",
			Identifier:   "billing@sitefix.com",
			Instructions: "Send the exact order amount and keep the confirmation number.",
		},
		{
			ID:           "pa-bank",
			Type:         PaymentAccountBank,
			Name:         "SiteFix Business Account",
			Identifier:   "IBAN DE89 3704 0044 0532 0130 00",
			Instructions: "Use the order ticket code as the transfer reference.",
		},
	}
}

// SeedSiteConfig returns the compiled-in configuration defaults. Stored
// overrides are merged over this record on every read.
func SeedSiteConfig() SiteConfig {
	return SiteConfig{
		SiteName:        "SiteFix",
		SiteDescription: "Websites, branding and growth for small businesses.",
		ContactEmail:    "hello@sitefix.com",
		ContactPhone:    "+1 555 010 7788",
		Address:         "410 Harbor Lane, Portland, OR",
		SEOTitle:        "SiteFix — Digital Agency",
		SEOKeywords:     "web design, seo, branding, small business",
		SEODescription:  "SiteFix builds and maintains websites that win customers.",
	}
}

// SeedOrders and SeedPages are empty: both collections start blank.
func SeedOrders() []Order { return []Order{} }

// SeedPages returns the initial custom-page collection.
func SeedPages() []Page { return []Page{} }
