package page

import "github.com/AtRiskMedia/tractpage-go/internal/domain/registry"

// Default font-size multipliers.
const DefaultFontScale = 1.0

// DefaultDocument is the template the editor starts from.
func DefaultDocument() *Document {
	return &Document{
		SiteTitle:   "My Landing Page",
		Background:  Background{Type: BgColor, Value: "#ffffff"},
		TextColor:   "#1f2937",
		AccentColor: "#2563eb",
		FontFamily:  FontSans,
		FontSizes: FontSizes{
			HeroTitle:    DefaultFontScale,
			HeroSubtitle: DefaultFontScale,
			SectionTitle: DefaultFontScale,
			Body:         DefaultFontScale,
		},
		GlobalPadding: 24,
		Header: Header{
			Style:      "overlay",
			Layout:     "left",
			LogoHeight: 40,
			BgColor:    "#ffffff",
			TextColor:  "#ffffff",
		},
		MenuItems: []MenuItem{
			{ID: "menu-1", Label: "Features", URL: "#section-2"},
			{ID: "menu-2", Label: "Pricing", URL: "#section-3"},
			{ID: "menu-3", Label: "FAQ", URL: "#section-4"},
		},
		Hero: Hero{
			MediaType:      "image",
			FallbackURL:    "https://images.unsplash.com/photo-1498050108023-c5249f4df085?w=1600",
			Height:         80,
			OverlayOpacity: 0.4,
			FocalX:         50,
			FocalY:         50,
			Title:          "Build something people love",
			Subtitle:       "A short promise that explains what you offer and why it matters.",
			Buttons: []Button{
				{ID: "hero-btn-1", Text: "Get started", URL: "#section-5"},
			},
		},
		Sections: []Section{
			{
				ID: 1, Type: registry.TypeText, PaddingTop: PaddingLG, PaddingBottom: PaddingMD,
				Content: &TextContent{
					Heading: "Why this exists",
					Text:    "Describe the problem your visitors have and how you solve it.",
					Align:   "center",
				},
			},
			{
				ID: 2, Type: registry.TypeColumns, PaddingTop: PaddingMD, PaddingBottom: PaddingMD,
				BgType: BgColor, BgValue: "#f8fafc", DividerTop: DividerWave, DividerTopColor: "#ffffff",
				Content: &ColumnsContent{
					Heading:     "Features",
					ColumnCount: 3,
					ColType:     ColCard,
					Design:      registry.DesignStandard,
					Items: []ColumnItem{
						{ID: "2-items-0", Title: "Fast", Text: "Pages render instantly."},
						{ID: "2-items-1", Title: "Simple", Text: "Edit everything from one form."},
						{ID: "2-items-2", Title: "Portable", Text: "Export a single HTML file."},
					},
				},
			},
			{
				ID: 3, Type: registry.TypePricing, PaddingTop: PaddingLG, PaddingBottom: PaddingLG,
				Content: &PricingContent{
					Heading: "Pricing",
					Design:  registry.DesignStandard,
					Plans: []Plan{
						{ID: "3-plans-0", Name: "Starter", Price: "$0", Period: "/mo", Features: []string{"1 page", "Export"}},
						{ID: "3-plans-1", Name: "Pro", Price: "$12", Period: "/mo", Features: []string{"Unlimited pages", "Custom domain"}, IsFeatured: true, Badge: "Popular"},
						{ID: "3-plans-2", Name: "Team", Price: "$39", Period: "/mo", Features: []string{"Everything in Pro", "5 editors"}},
					},
				},
			},
			{
				ID: 4, Type: registry.TypeFAQ, PaddingTop: PaddingMD, PaddingBottom: PaddingMD,
				Content: &FAQContent{
					Heading: "Questions",
					Design:  registry.DesignStandard,
					FAQs: []FAQItem{
						{ID: "4-faqs-0", Question: "Do I need a server?", Answer: "No. The exported file runs anywhere."},
						{ID: "4-faqs-1", Question: "Can I edit later?", Answer: "Yes. Re-import the saved config.json."},
					},
				},
			},
			{
				ID: 5, Type: registry.TypeConversionPanel, PaddingTop: PaddingLG, PaddingBottom: PaddingXL,
				BgType: BgColor, BgValue: "#111827", BoxStyle: BoxShadow,
				Content: &ConversionPanelContent{
					Heading: "Ready to launch?",
					Text:    "Start with this template and make it yours.",
					Design:  registry.DesignStandard,
					Buttons: []Button{{ID: "5-buttons-0", Text: "Start now", URL: "#"}},
				},
			},
		},
		FloatingCTA: FloatingCTA{
			Enabled:   false,
			Text:      "Start now",
			URL:       "#section-5",
			BgColor:   "#2563eb",
			TextColor: "#ffffff",
		},
	}
}
