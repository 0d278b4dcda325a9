// Package catalog holds the static content of the marketing site.
package catalog

type ServiceCard struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Details     string `json:"details"`
}

var cards = []ServiceCard{
	{
		Slug:        "transport",
		Title:       "Transport régional et national",
		Description: "Livraison de vos marchandises partout en France avec un suivi en temps réel et des délais optimisés.",
		Details:     "Nous couvrons l'ensemble du territoire national avec une flotte réactive et un système de tracking avancé.",
	},
	{
		Slug:        "express",
		Title:       "Livraison express",
		Description: "Service de transport urgent pour répondre aux imprévus avec des délais garantis dès J+1.",
		Details:     "Nos solutions express vous assurent une livraison rapide avec une priorité de traitement.",
	},
	{
		Slug:        "tracking",
		Title:       "Suivi des expéditions",
		Description: "Possibilité de contacter le transporteur à tout moment pour suivre vos colis en temps réel.",
		Details:     "Le livreur est contactable tout au long de la livraison à des fins de transparence de procédure.",
	},
	{
		Slug:        "custom",
		Title:       "Services sur-mesure",
		Description: "Solutions logistiques personnalisées adaptées aux spécificités de votre secteur d'activité.",
		Details:     "Nos experts conçoivent avec vous des prestations logistiques ajustées à vos contraintes métiers.",
	},
}

// Services returns the four cards in display order.
func Services() []ServiceCard {
	out := make([]ServiceCard, len(cards))
	copy(out, cards)
	return out
}

// Service finds a card by slug.
func Service(slug string) (ServiceCard, bool) {
	for _, c := range cards {
		if c.Slug == slug {
			return c, true
		}
	}
	return ServiceCard{}, false
}

type ContactInfo struct {
	Phones  []string `json:"phones"`
	Hours   string   `json:"hours"`
	Email   string   `json:"email"`
	Address []string `json:"address"`
}

// Contact is the "Informations de contact" block.
func Contact() ContactInfo {
	return ContactInfo{
		Phones:  []string{"+33 7 81 38 64 59", "+33 7 69 07 81 86"},
		Hours:   "Lun-Ven, 8h30-18h00",
		Email:   "contact@fretxpress.com",
		Address: []string{"Place Roger Salengro", "31000 TOULOUSE"},
	}
}
