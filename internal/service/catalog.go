package service

// ServicePlan is one pricing tier of an agency service.
type ServicePlan struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

// AgencyService is an entry in the static service catalog. The catalog also
// feeds the assist client's pricing instruction.
type AgencyService struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Blurb string        `json:"blurb"`
	Plans []ServicePlan `json:"plans"`
}

var catalog = []AgencyService{
	{
		ID:    "web-design",
		Name:  "Web Design",
		Blurb: "Custom marketing sites designed, written and launched.",
		Plans: []ServicePlan{
			{Name: "Starter", Price: "499"},
			{Name: "Business", Price: "999"},
			{Name: "Premium", Price: "1999"},
		},
	},
	{
		ID:    "seo",
		Name:  "SEO & Content",
		Blurb: "Technical audits, keyword strategy and monthly content.",
		Plans: []ServicePlan{
			{Name: "Audit", Price: "299"},
			{Name: "Monthly", Price: "599"},
		},
	},
	{
		ID:    "maintenance",
		Name:  "Site Maintenance",
		Blurb: "Updates, backups and uptime monitoring, handled for you.",
		Plans: []ServicePlan{
			{Name: "Basic", Price: "79"},
			{Name: "Priority", Price: "149"},
		},
	},
	{
		ID:    "branding",
		Name:  "Branding",
		Blurb: "Logos, color systems and brand guidelines.",
		Plans: []ServicePlan{
			{Name: "Refresh", Price: "399"},
			{Name: "Full Identity", Price: "899"},
		},
	},
}

// Catalog returns the static service catalog.
func Catalog() []AgencyService {
	return catalog
}

// FindService returns the catalog entry with the given id, or nil.
func FindService(id string) *AgencyService {
	for i := range catalog {
		if catalog[i].ID == id {
			return &catalog[i]
		}
	}
	return nil
}
