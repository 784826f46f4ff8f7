package document

// BuiltinTemplates 内置文档模板
// 与目录一样在启动时加载一次，之后只读
func BuiltinTemplates() []DocumentTemplate {
	return []DocumentTemplate{
		{
			ID:          "quote-classic",
			Name:        "Devis Classique",
			Description: "Structure professionnelle standard avec en-tête entreprise, informations client, tableau de prix et conditions",
			Category:    "devis",
			Modules: []TemplateModule{
				{ModuleType: "DOCUMENT_HEADER", Order: 1, Theme: "classic", Config: map[string]any{"layout": "side-by-side", "showLogo": true}},
				{ModuleType: "DOCUMENT_INFO", Order: 2, Theme: "inline", Config: map[string]any{"documentType": "DEVIS", "referencePrefix": "DEV-"}},
				{ModuleType: "TEXT_BLOCK", Order: 3, Config: map[string]any{"content": "Suite à votre demande, nous avons le plaisir de vous soumettre notre offre de prix pour les prestations suivantes :"}},
				{ModuleType: "PRICING_TABLE", Order: 4, Theme: "classic", Config: map[string]any{"showTVA": true, "tvaRate": 21, "currency": "€"}},
				{ModuleType: "TOTALS_SUMMARY", Order: 5, Theme: "boxed", Config: map[string]any{"tvaRate": 21, "currency": "€"}},
				{ModuleType: "VALIDITY_NOTICE", Order: 6, Theme: "warning", Config: map[string]any{"validityDays": 30}},
				{ModuleType: "TEXT_BLOCK", Order: 7, Config: map[string]any{"content": "Conditions de paiement : 30% à la commande, solde à la livraison."}},
				{ModuleType: "SIGNATURE_BLOCK", Order: 8, Theme: "formal", Config: map[string]any{"mention": "Bon pour accord"}},
				{ModuleType: "DOCUMENT_FOOTER", Order: 9, Theme: "minimal", Config: map[string]any{"showBankInfo": true}},
			},
		},
		{
			ID:          "quote-modern",
			Name:        "Devis Moderne",
			Description: "Mise en page épurée avec en-têtes séparés entreprise et client",
			Category:    "devis",
			Modules: []TemplateModule{
				{ModuleType: "COMPANY_HEADER", Order: 1, Theme: "modern"},
				{ModuleType: "CLIENT_HEADER", Order: 2, Theme: "highlighted"},
				{ModuleType: "DOCUMENT_INFO", Order: 3, Theme: "badge", Config: map[string]any{"documentType": "DEVIS"}},
				{ModuleType: "SPACER", Order: 4, Config: map[string]any{"height": 20}},
				{ModuleType: "PRICING_TABLE", Order: 5, Theme: "modern"},
				{ModuleType: "TOTALS_SUMMARY", Order: 6, Theme: "highlighted"},
				{ModuleType: "SPACER", Order: 7, Config: map[string]any{"height": 15}},
				{ModuleType: "VALIDITY_NOTICE", Order: 8, Theme: "info"},
				{ModuleType: "PAYMENT_INFO", Order: 9, Theme: "highlighted"},
				{ModuleType: "SIGNATURE_BLOCK", Order: 10, Theme: "modern"},
				{ModuleType: "DOCUMENT_FOOTER", Order: 11, Theme: "modern"},
			},
		},
		{
			ID:          "order-form",
			Name:        "Bon de Commande",
			Description: "Confirmation de commande avec récapitulatif des prestations",
			Category:    "commande",
			Modules: []TemplateModule{
				{ModuleType: "DOCUMENT_HEADER", Order: 1, Theme: "classic"},
				{ModuleType: "DOCUMENT_INFO", Order: 2, Theme: "table", Config: map[string]any{"documentType": "BON DE COMMANDE", "referencePrefix": "CMD-"}},
				{ModuleType: "TEXT_BLOCK", Order: 3, Theme: "highlight", Config: map[string]any{"content": "Nous accusons réception de votre commande et vous en remercions."}},
				{ModuleType: "PRICING_TABLE", Order: 4, Theme: "classic"},
				{ModuleType: "TOTALS_SUMMARY", Order: 5, Theme: "boxed"},
				{ModuleType: "TEXT_BLOCK", Order: 6, Config: map[string]any{"content": "Délai de livraison estimé : à confirmer."}},
				{ModuleType: "SIGNATURE_BLOCK", Order: 7, Theme: "standard"},
				{ModuleType: "DOCUMENT_FOOTER", Order: 8, Theme: "minimal"},
			},
		},
		{
			ID:          "contract",
			Name:        "Contrat de Service",
			Description: "Document contractuel avec sections numérotées et mentions légales",
			Category:    "contrat",
			Modules: []TemplateModule{
				{ModuleType: "COMPANY_HEADER", Order: 1, Theme: "minimal"},
				{ModuleType: "TITLE", Order: 2, Config: map[string]any{"text": "Contrat de prestation de services", "level": "h1"}},
				{ModuleType: "DOCUMENT_INFO", Order: 3, Theme: "inline", Config: map[string]any{"documentType": "CONTRAT"}},
				{ModuleType: "TEXT_BLOCK", Order: 4, Config: map[string]any{"content": "Article 1 - Objet du contrat"}},
				{ModuleType: "TEXT_BLOCK", Order: 5, Config: map[string]any{"content": "Article 2 - Durée et conditions d'exécution"}},
				{ModuleType: "PRICING_TABLE", Order: 6, Theme: "minimal"},
				{ModuleType: "TEXT_BLOCK", Order: 7, Config: map[string]any{"content": "Article 3 - Modalités de paiement"}},
				{ModuleType: "TEXT_BLOCK", Order: 8, Config: map[string]any{"content": "Article 4 - Résiliation"}},
				{ModuleType: "TERMS_CONDITIONS", Order: 9, Theme: "compact"},
				{ModuleType: "SPACER", Order: 10, Config: map[string]any{"height": 30}},
				{ModuleType: "TEXT_BLOCK", Order: 11, Config: map[string]any{"content": "Fait en deux exemplaires originaux."}},
				{ModuleType: "SIGNATURE_BLOCK", Order: 12, Theme: "formal"},
				{ModuleType: "DOCUMENT_FOOTER", Order: 13, Theme: "classic"},
			},
		},
		{
			ID:          "invoice",
			Name:        "Facture",
			Description: "Facture professionnelle avec toutes les mentions légales obligatoires",
			Category:    "facture",
			Modules: []TemplateModule{
				{ModuleType: "DOCUMENT_HEADER", Order: 1, Theme: "bordered"},
				{ModuleType: "TITLE", Order: 2, Config: map[string]any{"text": "FACTURE", "level": "h1"}},
				{ModuleType: "DOCUMENT_INFO", Order: 3, Theme: "table", Config: map[string]any{"documentType": "FACTURE", "referencePrefix": "FAC-"}},
				{ModuleType: "PRICING_TABLE", Order: 4, Theme: "classic"},
				{ModuleType: "TOTALS_SUMMARY", Order: 5, Theme: "boxed"},
				{ModuleType: "PAYMENT_INFO", Order: 6, Theme: "highlighted"},
				{ModuleType: "TEXT_BLOCK", Order: 7, Config: map[string]any{"content": "En cas de retard de paiement, des pénalités seront appliquées conformément à la législation en vigueur."}},
				{ModuleType: "DOCUMENT_FOOTER", Order: 8, Theme: "classic"},
			},
		},
		{
			ID:          "credit-note",
			Name:        "Note de Crédit",
			Description: "Avoir pour annulation ou remboursement partiel",
			Category:    "facture",
			Modules: []TemplateModule{
				{ModuleType: "DOCUMENT_HEADER", Order: 1, Theme: "bordered"},
				{ModuleType: "TITLE", Order: 2, Config: map[string]any{"text": "NOTE DE CRÉDIT", "level": "h1"}},
				{ModuleType: "DOCUMENT_INFO", Order: 3, Theme: "table", Config: map[string]any{"referencePrefix": "NC-"}},
				{ModuleType: "PRICING_TABLE", Order: 4, Theme: "classic"},
				{ModuleType: "TOTALS_SUMMARY", Order: 5, Theme: "standard"},
				{ModuleType: "TEXT_BLOCK", Order: 6, Config: map[string]any{"content": "Cette note de crédit annule ou corrige la facture référencée ci-dessus."}},
				{ModuleType: "DOCUMENT_FOOTER", Order: 7, Theme: "classic"},
			},
		},
	}
}

// FindBuiltinTemplate 按 ID 查找内置模板
func FindBuiltinTemplate(id string) (*DocumentTemplate, bool) {
	for _, tpl := range BuiltinTemplates() {
		if tpl.ID == id {
			t := tpl
			return &t, true
		}
	}
	return nil, false
}
