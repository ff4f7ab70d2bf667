// Package defaults holds the content served when no database is
// configured or a table comes back empty. Same rows the site shipped
// with before the admin panel existed.
package defaults

import "github.com/Ibrahima96/pacao/internal/model"

const WhatsAppNumber = "221779883924"

func Services() []model.Service {
	return []model.Service{
		{
			ID:          "service-branding",
			Title:       "Identité & Branding",
			Subtitle:    "Création Unique • Design • Finitions",
			Description: "Votre identité est votre signature. Chez Pacao, nous forgeons des logos mémorables et des supports d'exception (cartes de visite luxe, papeterie) qui incarnent l'essence de votre activité avec une précision d'orfèvre.",
			Image:       "https://images.unsplash.com/photo-1634152962476-4b8a00e1915c?q=80&w=1200&auto=format&fit=crop",
			Alignment:   model.AlignCenter,
			ColorTheme:  "#fbbf24",
			Price:       "Sur devis",
			Badges:      []string{"Populaire"},
		},
		{
			ID:          "service-print",
			Title:       "Print Grand Format",
			Subtitle:    "Impact Visuel • Murales • Publicité",
			Description: "Dominez l'espace. Nos impressions grand format, des fresques murales immersives aux campagnes publicitaires urbaines, sont conçues pour captiver le regard avec une colorimétrie et une définition irréprochables.",
			Image:       "https://images.unsplash.com/photo-1562654501-a0ccc0fc3fb1?q=80&w=1200&auto=format&fit=crop",
			Alignment:   model.AlignLeft,
			ColorTheme:  "#f472b6",
			Price:       "Dès 15.000 FCFA",
		},
		{
			ID:          "service-custom",
			Title:       "Personnalisation",
			Subtitle:    "Textile • Packaging • Objets",
			Description: "Marquez les esprits et la matière. Du flocage textile haute tenue pour vos équipes aux emballages produits sur mesure, nous transformons chaque objet en vecteur de votre marque.",
			Image:       "https://images.unsplash.com/photo-1556905055-8f358a7a47b2?q=80&w=1200&auto=format&fit=crop",
			Alignment:   model.AlignRight,
			ColorTheme:  "#34d399",
			Badges:      []string{"Nouveau", "Promo"},
		},
		{
			ID:          "service-tech",
			Title:       "Hardware & Tech",
			Subtitle:    "Équipement • Réseaux • Performance",
			Description: "La puissance au service de la créativité. Nous fournissons et installons le matériel informatique et les infrastructures électriques critiques pour garantir la continuité et la performance de vos opérations.",
			Image:       "https://images.unsplash.com/photo-1558494949-ef010cbdcc31?q=80&w=1200&auto=format&fit=crop",
			Alignment:   model.AlignCenter,
			ColorTheme:  "#60a5fa",
		},
	}
}

func Testimonials() []model.Testimonial {
	return []model.Testimonial{
		{
			ID:     "t1",
			Quote:  "La qualité d'impression des affiches pour notre événement était spectaculaire. Un rendu des couleurs fidèle et percutant qui a fait toute la différence.",
			Author: "Claire S.",
			Role:   "Directrice Marketing, EventFlow",
		},
		{
			ID:     "t2",
			Quote:  "Pacao a modernisé toute notre flotte informatique avec une efficacité redoutable. Enfin un partenaire qui comprend nos enjeux techniques.",
			Author: "Thomas L.",
			Role:   "Gérant, TechSolutions",
		},
		{
			ID:     "t3",
			Quote:  "Le flocage de nos tenues professionnelles tient parfaitement dans le temps. C'est ce souci du détail et de la durabilité que nous recherchions.",
			Author: "Sarah B.",
			Role:   "Restauratrice, Le Petit Chef",
		},
	}
}

func Gallery() []model.GalleryItem {
	return []model.GalleryItem{
		{ID: "g1", Image: "https://images.unsplash.com/photo-1626785774573-4b799314346d?q=80&w=800&auto=format&fit=crop", Alt: "Détail impression offset", Size: model.SizeLarge, Category: "Print"},
		{ID: "g2", Image: "https://images.unsplash.com/photo-1525547719571-a2d4ac8945e2?q=80&w=800&auto=format&fit=crop", Alt: "Matériel informatique setup", Size: model.SizeMedium, Category: "Tech"},
		{ID: "g3", Image: "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?q=80&w=800&auto=format&fit=crop", Alt: "Design graphique luxe", Size: model.SizeSmall, Category: "Design"},
		{ID: "g4", Image: "https://images.unsplash.com/photo-1503342217505-b0a15ec3261c?q=80&w=800&auto=format&fit=crop", Alt: "Flocage T-shirt", Size: model.SizeLarge, Category: "Textile"},
		{ID: "g5", Image: "https://images.unsplash.com/photo-1618005182384-a83a8bd57fbe?q=80&w=800&auto=format&fit=crop", Alt: "Enseigne lumineuse", Size: model.SizeMedium, Category: "Branding"},
		{ID: "g6", Image: "https://images.unsplash.com/photo-1632924194098-b80c54152a55?q=80&w=800&auto=format&fit=crop", Alt: "Papeterie premium", Size: model.SizeSmall, Category: "Print"},
	}
}

// SiteContent mirrors the hard-coded copy the page falls back to when a
// key is absent from the store.
func SiteContent() map[string]string {
	return map[string]string{
		"site_name":        "PACAO",
		"site_description": "Solutions d'impression & digitales",
		"hero_tagline":     "L'excellence au service de l'image",
		"hero_title":       "PACAO",
		"hero_subtitle":    "Nous transformons vos idées en supports tangibles. Design, Impression & Matériel Professionnel.",
		"footer_cta_title": "Prêt à collaborer ?",
		"footer_cta_text":  "Chaque projet commence par une discussion. Parlons de vos besoins.",
		"whatsapp_number":  WhatsAppNumber,
	}
}
