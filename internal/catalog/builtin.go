package catalog

// Builtin 构建内置模块目录
// 目录内容与前端编辑器约定一致，字段 key 与配置 JSON 一一对应
func Builtin() *Registry {
	return NewRegistry(builtinDefinitions())
}

func builtinDefinitions() []Definition {
	return []Definition{
		// ============== CONTENT ==============
		{
			ID:          "TITLE",
			Name:        "Titre",
			Category:    CategoryContent,
			Description: "Titre principal ou secondaire",
			Resizable:   true,
			DefaultSize: Size{Width: 100, Height: 10},
			DefaultConfig: map[string]any{
				"text":      "Titre du document",
				"level":     "h1",
				"alignment": "center",
			},
			Themes: []Theme{
				{ID: "modern", Name: "Moderne", Description: "Style épuré avec accent de couleur", Styles: map[string]any{"fontFamily": "Inter, sans-serif", "fontWeight": 700}},
				{ID: "classic", Name: "Classique", Description: "Style traditionnel élégant", Styles: map[string]any{"fontFamily": "Georgia, serif", "fontStyle": "italic"}},
				{ID: "bold", Name: "Impact", Description: "Style fort et impactant", Styles: map[string]any{"fontWeight": 900, "textTransform": "uppercase"}},
				{ID: "minimal", Name: "Minimaliste", Description: "Style très léger", Styles: map[string]any{"fontWeight": 300, "letterSpacing": "2px"}},
			},
			ConfigFields: []ConfigField{
				{Key: "text", Label: "Texte", Type: "text"},
				{Key: "dataBinding", Label: "Lier à une donnée", Type: "data-binding", Group: "data"},
				{Key: "level", Label: "Niveau", Type: "select", Options: []FieldOption{{Value: "h1", Label: "Titre principal (H1)"}, {Value: "h2", Label: "Sous-titre (H2)"}, {Value: "h3", Label: "Section (H3)"}}},
				{Key: "alignment", Label: "Alignement", Type: "select", Options: alignmentOptions()},
				{Key: "color", Label: "Couleur", Type: "color", Default: "#000000"},
				{Key: "fontSize", Label: "Taille (px)", Type: "number", Default: 32},
			},
		},
		{
			ID:          "SUBTITLE",
			Name:        "Sous-titre",
			Category:    CategoryContent,
			Description: "Texte d'accompagnement",
			Resizable:   true,
			DefaultSize: Size{Width: 100, Height: 5},
			DefaultConfig: map[string]any{
				"text":      "Sous-titre explicatif",
				"alignment": "center",
			},
			Themes: []Theme{
				{ID: "light", Name: "Léger", Description: "Style discret", Styles: map[string]any{"opacity": 0.7, "fontWeight": 300}},
				{ID: "accent", Name: "Accentué", Description: "Avec couleur d'accent", Styles: map[string]any{"fontWeight": 500}},
			},
			ConfigFields: []ConfigField{
				{Key: "text", Label: "Texte", Type: "textarea"},
				{Key: "dataBinding", Label: "Lier à une donnée", Type: "data-binding", Group: "data"},
				{Key: "alignment", Label: "Alignement", Type: "select", Options: alignmentOptions()},
			},
		},
		{
			ID:          "TEXT_BLOCK",
			Name:        "Bloc de texte",
			Category:    CategoryContent,
			Description: "Paragraphe de texte libre",
			Resizable:   true,
			DefaultSize: Size{Width: 100, Height: 20},
			DefaultConfig: map[string]any{
				"content": "<p>Entrez votre texte ici...</p>",
			},
			Themes: []Theme{
				{ID: "standard", Name: "Standard", Description: "Texte simple"},
				{ID: "highlight", Name: "Encadré", Description: "Avec fond coloré", Styles: map[string]any{"backgroundColor": "#f5f5f5", "padding": "20px"}},
			},
			ConfigFields: []ConfigField{
				{Key: "content", Label: "Contenu", Type: "rich-text"},
				{Key: "dataBinding", Label: "Lier à une donnée", Type: "data-binding", Group: "data"},
				{Key: "fontSize", Label: "Taille (px)", Type: "number", Default: 14},
				{Key: "lineHeight", Label: "Interligne", Type: "number", Default: 1.6},
			},
		},
		{
			ID:          "TESTIMONIAL",
			Name:        "Témoignage",
			Category:    CategoryContent,
			Description: "Citation ou témoignage client",
			Resizable:   true,
			DefaultSize: Size{Width: 80, Height: 20},
			DefaultConfig: map[string]any{
				"quote":   "Témoignage du client...",
				"author":  "Nom du client",
				"company": "Entreprise",
				"avatar":  "",
			},
			Themes: []Theme{
				{ID: "simple", Name: "Simple", Description: "Citation simple"},
				{ID: "card", Name: "Carte", Description: "Dans un encadré", Styles: map[string]any{"backgroundColor": "#f9f9f9", "padding": "24px"}},
				{ID: "quote", Name: "Guillemets", Description: "Avec guillemets décoratifs"},
			},
			ConfigFields: []ConfigField{
				{Key: "quote", Label: "Citation", Type: "textarea"},
				{Key: "author", Label: "Auteur", Type: "text"},
				{Key: "company", Label: "Entreprise", Type: "text"},
				{Key: "avatar", Label: "Photo", Type: "image"},
			},
		},
		{
			ID:          "COMPANY_PRESENTATION",
			Name:        "Présentation entreprise",
			Category:    CategoryContent,
			Description: "Bloc de présentation de l'entreprise",
			Resizable:   true,
			DefaultSize: Size{Width: 100, Height: 35},
			DefaultConfig: map[string]any{
				"title":       "À propos de nous",
				"description": "",
				"showLogo":    true,
				"showStats":   true,
				"stats": []any{
					map[string]any{"value": "10+", "label": "Années d'expérience"},
					map[string]any{"value": "500+", "label": "Projets réalisés"},
					map[string]any{"value": "98%", "label": "Clients satisfaits"},
				},
			},
			Themes: []Theme{
				{ID: "standard", Name: "Standard", Description: "Présentation classique"},
				{ID: "modern", Name: "Moderne", Description: "Style épuré"},
				{ID: "detailed", Name: "Détaillé", Description: "Avec statistiques"},
			},
			ConfigFields: []ConfigField{
				{Key: "title", Label: "Titre", Type: "text"},
				{Key: "description", Label: "Description", Type: "rich-text"},
				{Key: "showLogo", Label: "Afficher logo", Type: "toggle", Default: true},
				{Key: "showStats", Label: "Afficher stats", Type: "toggle", Default: true},
			},
		},
		{
			ID:          "FAQ",
			Name:        "FAQ",
			Category:    CategoryContent,
			Description: "Questions fréquentes",
			Resizable:   true,
			DefaultSize: Size{Width: 100, Height: 40},
			DefaultConfig: map[string]any{
				"title": "Questions fréquentes",
				"items": []any{
					map[string]any{"question": "Question 1?", "answer": "Réponse 1"},
				},
			},
			Themes: []Theme{
				{ID: "list", Name: "Liste", Description: "Format liste"},
				{ID: "accordion", Name: "Accordéon", Description: "Style accordéon"},
			},
			ConfigFields: []ConfigField{
				{Key: "title", Label: "Titre", Type: "text"},
			},
		},

		// ============== MEDIA ==============
		{
			ID:          "IMAGE",
			Name:        "Image",
			Category:    CategoryMedia,
			Description: "Image ou logo",
			Resizable:   true,
			DefaultSize: Size{Width: 40, Height: 30},
			DefaultConfig: map[string]any{
				"src":       "",
				"alt":       "Image",
				"objectFit": "contain",
			},
			Themes: []Theme{
				{ID: "normal", Name: "Normal", Description: "Image simple"},
				{ID: "rounded", Name: "Arrondi", Description: "Coins arrondis", Styles: map[string]any{"borderRadius": "12px"}},
				{ID: "circle", Name: "Cercle", Description: "Image circulaire", Styles: map[string]any{"borderRadius": "50%"}},
				{ID: "shadow", Name: "Ombre", Description: "Avec ombre portée", Styles: map[string]any{"boxShadow": "0 8px 24px rgba(0,0,0,0.15)"}},
				{ID: "framed", Name: "Encadré", Description: "Avec bordure", Styles: map[string]any{"border": "2px solid #e8e8e8", "padding": "8px"}},
			},
			ConfigFields: []ConfigField{
				{Key: "src", Label: "Image", Type: "image"},
				{Key: "alt", Label: "Description", Type: "text"},
				{Key: "objectFit", Label: "Ajustement", Type: "select", Options: []FieldOption{{Value: "contain", Label: "Contenir"}, {Value: "cover", Label: "Couvrir"}, {Value: "fill", Label: "Étirer"}}},
				{Key: "opacity", Label: "Opacité (%)", Type: "number", Default: 100},
			},
		},
		{
			ID:          "BACKGROUND",
			Name:        "Fond",
			Category:    CategoryMedia,
			Description: "Image ou couleur de fond",
			Resizable:   false,
			DefaultConfig: map[string]any{
				"type":         "color",
				"color":        "#ffffff",
				"image":        "",
				"overlay":      true,
				"overlayColor": "rgba(0,0,0,0.3)",
			},
			Themes: []Theme{
				{ID: "solid", Name: "Couleur unie", Description: "Fond simple"},
				{ID: "gradient", Name: "Dégradé", Description: "Dégradé de couleurs"},
				{ID: "image", Name: "Image", Description: "Image de fond"},
			},
			ConfigFields: []ConfigField{
				{Key: "type", Label: "Type", Type: "select", Options: []FieldOption{{Value: "color", Label: "Couleur"}, {Value: "gradient", Label: "Dégradé"}, {Value: "image", Label: "Image"}}},
				{Key: "color", Label: "Couleur", Type: "color", Default: "#ffffff", Group: "color"},
				{Key: "gradientStart", Label: "Dégradé début", Type: "color", Group: "gradient"},
				{Key: "gradientEnd", Label: "Dégradé fin", Type: "color", Group: "gradient"},
				{Key: "gradientAngle", Label: "Angle (°)", Type: "number", Default: 45, Group: "gradient"},
				{Key: "image", Label: "Image", Type: "image", Group: "image"},
				{Key: "overlay", Label: "Overlay", Type: "toggle", Group: "image"},
				{Key: "overlayColor", Label: "Couleur overlay", Type: "color", Group: "image"},
			},
		},

		// ============== DATA ==============
		{
			ID:          "PRICING_TABLE",
			Name:        "Tableau des prix",
			Category:    CategoryData,
			Description: "Tableau de produits/services avec prix",
			Resizable:   true,
			DefaultSize: Size{Width: 100, Height: 40},
			DefaultConfig: map[string]any{
				"title":        "Détail du devis",
				"columns":      []any{"Désignation", "Quantité", "Prix unitaire", "Total"},
				"pricingLines": []any{},
				"showTotal":    true,
				"showTVA":      true,
				"tvaRate":      21,
				"currency":     "€",
			},
			Themes: []Theme{
				{ID: "modern", Name: "Moderne", Description: "Style épuré"},
				{ID: "classic", Name: "Classique", Description: "Bordures traditionnelles", Styles: map[string]any{"border": "1px solid #000"}},
				{ID: "zebra", Name: "Rayures", Description: "Lignes alternées"},
				{ID: "minimal", Name: "Minimal", Description: "Sans bordures", Styles: map[string]any{"border": "none"}},
			},
			ConfigFields: []ConfigField{
				{Key: "title", Label: "Titre du tableau", Type: "text"},
				{Key: "showTotal", Label: "Afficher le total", Type: "toggle", Default: true},
				{Key: "showTVA", Label: "Afficher la TVA", Type: "toggle", Default: true},
				{Key: "tvaRate", Label: "Taux TVA (%)", Type: "number", Default: 21},
				{Key: "currency", Label: "Devise", Type: "select", Options: currencyOptions()},
			},
		},
		{
			ID:          "DATA_TABLE",
			Name:        "Tableau de données",
			Category:    CategoryData,
			Description: "Tableau personnalisable",
			Resizable:   true,
			DefaultSize: Size{Width: 100, Height: 30},
			DefaultConfig: map[string]any{
				"columns": []any{map[string]any{"key": "col1", "label": "Colonne 1"}},
				"rows":    []any{},
			},
			Themes: []Theme{
				{ID: "standard", Name: "Standard", Description: "Style par défaut"},
				{ID: "compact", Name: "Compact", Description: "Espacement réduit", Styles: map[string]any{"padding": "4px 8px"}},
			},
			ConfigFields: []ConfigField{
				{Key: "headerBackground", Label: "Fond en-tête", Type: "color", Default: "#f5f5f5"},
				{Key: "headerColor", Label: "Texte en-tête", Type: "color", Default: "#000000"},
				{Key: "borderColor", Label: "Couleur bordure", Type: "color", Default: "#e8e8e8"},
			},
		},
		{
			ID:          "DATE_BLOCK",
			Name:        "Date",
			Category:    CategoryData,
			Description: "Affiche une date (ex: date du devis)",
			Resizable:   true,
			DefaultSize: Size{Width: 30, Height: 5},
			DefaultConfig: map[string]any{
				"format": "long",
				"prefix": "Date:",
				"value":  "today",
			},
			Themes: []Theme{
				{ID: "inline", Name: "En ligne", Description: "Texte simple"},
				{ID: "badge", Name: "Badge", Description: "Dans un encadré", Styles: map[string]any{"backgroundColor": "#f0f0f0", "padding": "8px 16px"}},
			},
			ConfigFields: []ConfigField{
				{Key: "prefix", Label: "Préfixe", Type: "text"},
				{Key: "format", Label: "Format", Type: "select", Options: []FieldOption{{Value: "short", Label: "Court (21/12/2025)"}, {Value: "long", Label: "Long (21 décembre 2025)"}, {Value: "full", Label: "Complet (Dimanche 21 décembre 2025)"}}},
				{Key: "value", Label: "Date", Type: "select", Options: []FieldOption{{Value: "today", Label: "Aujourd'hui"}, {Value: "custom", Label: "Personnalisée"}}},
				{Key: "customDate", Label: "Date personnalisée", Type: "date"},
			},
		},
		{
			ID:          "TIMELINE",
			Name:        "Calendrier/Planning",
			Category:    CategoryData,
			Description: "Planning ou échéancier du projet",
			Resizable:   true,
			DefaultSize: Size{Width: 100, Height: 30},
			DefaultConfig: map[string]any{
				"title": "Planning prévisionnel",
				"steps": []any{
					map[string]any{"date": "", "label": "Étape 1", "description": ""},
				},
			},
			Themes: []Theme{
				{ID: "horizontal", Name: "Horizontal", Description: "Timeline horizontale"},
				{ID: "vertical", Name: "Vertical", Description: "Timeline verticale"},
				{ID: "table", Name: "Tableau", Description: "Format tableau"},
			},
			ConfigFields: []ConfigField{
				{Key: "title", Label: "Titre", Type: "text"},
			},
		},
		{
			ID:          "DOCUMENT_INFO",
			Name:        "Infos Document",
			Category:    CategoryData,
			Description: "Référence, date et informations du document",
			Resizable:   true,
			DefaultSize: Size{Width: 100, Height: 15},
			DefaultConfig: map[string]any{
				"showReference":    true,
				"showDate":         true,
				"showValidUntil":   true,
				"showObject":       true,
				"referencePrefix":  "Réf:",
				"datePrefix":       "Date:",
				"validUntilPrefix": "Valide jusqu'au:",
				"objectPrefix":     "Objet:",
				"layout":           "inline",
			},
			Themes: []Theme{
				{ID: "inline", Name: "En ligne", Description: "Informations sur une ligne"},
				{ID: "badge", Name: "Badges", Description: "Dans des badges"},
				{ID: "table", Name: "Tableau", Description: "Format tableau"},
				{ID: "header", Name: "Titre", Description: "Gros titre centré", Styles: map[string]any{"textAlign": "center", "fontWeight": "bold"}},
			},
			ConfigFields: []ConfigField{
				{Key: "reference", Label: "Référence", Type: "text"},
				{Key: "referenceBinding", Label: "Lier la référence", Type: "data-binding", Group: "data"},
				{Key: "date", Label: "Date", Type: "text"},
				{Key: "validUntil", Label: "Valide jusqu'au", Type: "text"},
				{Key: "object", Label: "Objet", Type: "text"},
				{Key: "documentType", Label: "Type document", Type: "select", Options: []FieldOption{{Value: "DEVIS", Label: "DEVIS"}, {Value: "FACTURE", Label: "FACTURE"}, {Value: "BON DE COMMANDE", Label: "BON DE COMMANDE"}, {Value: "CONTRAT", Label: "CONTRAT"}}},
				{Key: "layout", Label: "Disposition", Type: "select", Options: []FieldOption{{Value: "inline", Label: "En ligne"}, {Value: "stacked", Label: "Empilé"}, {Value: "table", Label: "Tableau"}}},
			},
		},
		{
			ID:          "PAYMENT_INFO",
			Name:        "Infos Paiement",
			Category:    CategoryData,
			Description: "Coordonnées bancaires et conditions",
			Resizable:   true,
			DefaultSize: Size{Width: 100, Height: 15},
			DefaultConfig: map[string]any{
				"title":             "Modalités de paiement",
				"showIBAN":          true,
				"showBIC":           true,
				"showCommunication": true,
				"showPaymentTerms":  true,
				"paymentTerms":      "30 jours date de facture",
			},
			Themes: []Theme{
				{ID: "standard", Name: "Standard", Description: "Style simple"},
				{ID: "boxed", Name: "Encadré", Description: "Dans un cadre", Styles: map[string]any{"border": "1px solid #e8e8e8", "padding": "16px"}},
				{ID: "highlighted", Name: "Mis en avant", Description: "Fond coloré", Styles: map[string]any{"backgroundColor": "#f0f9ff", "padding": "16px"}},
				{ID: "minimal", Name: "Minimaliste", Description: "Compact", Styles: map[string]any{"fontSize": "12px"}},
			},
			ConfigFields: []ConfigField{
				{Key: "title", Label: "Titre", Type: "text"},
				{Key: "iban", Label: "IBAN", Type: "text"},
				{Key: "bic", Label: "BIC", Type: "text"},
				{Key: "bankName", Label: "Nom de la banque", Type: "text"},
				{Key: "communication", Label: "Communication", Type: "text"},
				{Key: "paymentTerms", Label: "Conditions de paiement", Type: "textarea"},
			},
		},
		{
			ID:          "TOTALS_SUMMARY",
			Name:        "Récapitulatif Totaux",
			Category:    CategoryData,
			Description: "Total HT, TVA et TTC",
			Resizable:   true,
			DefaultSize: Size{Width: 40, Height: 15},
			DefaultConfig: map[string]any{
				"showTotalHT":  true,
				"showTVA":      true,
				"showTotalTTC": true,
				"showDiscount": false,
				"tvaRate":      21,
				"currency":     "€",
				"alignment":    "right",
			},
			Themes: []Theme{
				{ID: "standard", Name: "Standard", Description: "Style simple"},
				{ID: "boxed", Name: "Encadré", Description: "Dans un cadre", Styles: map[string]any{"border": "2px solid #e8e8e8", "padding": "16px"}},
				{ID: "highlighted", Name: "Total mis en avant", Description: "TTC en gras"},
				{ID: "minimal", Name: "Minimaliste", Description: "Compact"},
			},
			ConfigFields: []ConfigField{
				{Key: "totalHT", Label: "Total HT", Type: "text"},
				{Key: "tvaAmount", Label: "Montant TVA", Type: "text"},
				{Key: "totalTTC", Label: "Total TTC", Type: "text"},
				{Key: "discount", Label: "Remise", Type: "text"},
				{Key: "tvaRate", Label: "Taux TVA (%)", Type: "number", Default: 21},
				{Key: "currency", Label: "Devise", Type: "select", Options: currencyOptions()},
				{Key: "alignment", Label: "Alignement", Type: "select", Options: alignmentOptions()},
			},
		},

		// ============== LEGAL ==============
		{
			ID:          "TERMS_CONDITIONS",
			Name:        "Conditions générales",
			Category:    CategoryLegal,
			Description: "Conditions générales de vente",
			Resizable:   true,
			DefaultSize: Size{Width: 100, Height: 50},
			DefaultConfig: map[string]any{
				"title":    "Conditions Générales",
				"content":  "",
				"fontSize": 10,
				"columns":  1,
			},
			Themes: []Theme{
				{ID: "standard", Name: "Standard", Description: "Texte normal"},
				{ID: "compact", Name: "Compact", Description: "Petit texte dense", Styles: map[string]any{"fontSize": "9px"}},
				{ID: "twoColumns", Name: "2 colonnes", Description: "Sur deux colonnes"},
			},
			ConfigFields: []ConfigField{
				{Key: "title", Label: "Titre", Type: "text"},
				{Key: "content", Label: "Contenu", Type: "rich-text"},
				{Key: "fontSize", Label: "Taille texte (px)", Type: "number", Default: 10},
			},
		},
		{
			ID:          "VALIDITY_NOTICE",
			Name:        "Mention Validité",
			Category:    CategoryLegal,
			Description: "Validité du document avec date limite",
			Resizable:   true,
			DefaultSize: Size{Width: 100, Height: 8},
			DefaultConfig: map[string]any{
				"template":     "standard",
				"customText":   "",
				"showIcon":     true,
				"validityDays": 30,
			},
			Themes: []Theme{
				{ID: "warning", Name: "Avertissement", Description: "Style alerte", Styles: map[string]any{"backgroundColor": "#fff7e6", "border": "1px solid #ffd591"}},
				{ID: "info", Name: "Information", Description: "Style info", Styles: map[string]any{"backgroundColor": "#e6f7ff", "border": "1px solid #91d5ff"}},
				{ID: "subtle", Name: "Discret", Description: "Style léger", Styles: map[string]any{"fontStyle": "italic", "color": "#666"}},
				{ID: "bold", Name: "Important", Description: "Style fort", Styles: map[string]any{"fontWeight": "bold", "backgroundColor": "#fff1f0"}},
			},
			ConfigFields: []ConfigField{
				{Key: "template", Label: "Modèle", Type: "select", Options: []FieldOption{{Value: "standard", Label: "Ce devis est valable 30 jours"}, {Value: "date", Label: "Valable jusqu'au [date]"}, {Value: "custom", Label: "Texte personnalisé"}}},
				{Key: "validUntilDate", Label: "Date limite", Type: "text"},
				{Key: "validityDays", Label: "Nombre de jours", Type: "number", Default: 30},
				{Key: "customText", Label: "Texte personnalisé", Type: "textarea"},
			},
		},

		// ============== INTERACTION ==============
		{
			ID:          "SIGNATURE_BLOCK",
			Name:        "Bloc signature",
			Category:    CategoryInteraction,
			Description: "Zone de signature client/prestataire",
			Resizable:   true,
			DefaultSize: Size{Width: 100, Height: 25},
			DefaultConfig: map[string]any{
				"layout":       "side-by-side",
				"clientLabel":  "Le Client",
				"companyLabel": "Pour l'entreprise",
				"showDate":     true,
				"showMention":  true,
				"mention":      "Lu et approuvé, bon pour accord",
			},
			Themes: []Theme{
				{ID: "standard", Name: "Standard", Description: "Zones côte à côte"},
				{ID: "formal", Name: "Formel", Description: "Avec encadré", Styles: map[string]any{"border": "1px solid #000", "padding": "20px"}},
				{ID: "modern", Name: "Moderne", Description: "Style épuré", Styles: map[string]any{"borderTop": "2px solid #e8e8e8"}},
			},
			ConfigFields: []ConfigField{
				{Key: "layout", Label: "Disposition", Type: "select", Options: []FieldOption{{Value: "side-by-side", Label: "Côte à côte"}, {Value: "stacked", Label: "Empilé"}}},
				{Key: "clientLabel", Label: "Label client", Type: "text"},
				{Key: "companyLabel", Label: "Label entreprise", Type: "text"},
				{Key: "showDate", Label: "Afficher date", Type: "toggle", Default: true},
				{Key: "mention", Label: "Texte mention", Type: "text"},
			},
		},
		{
			ID:          "CONTACT_INFO",
			Name:        "Coordonnées",
			Category:    CategoryInteraction,
			Description: "Informations de contact",
			Resizable:   true,
			DefaultSize: Size{Width: 50, Height: 15},
			DefaultConfig: map[string]any{
				"title":       "Nous contacter",
				"showPhone":   true,
				"showEmail":   true,
				"showAddress": true,
				"showWebsite": true,
			},
			Themes: []Theme{
				{ID: "list", Name: "Liste", Description: "Format liste"},
				{ID: "card", Name: "Carte", Description: "Dans un encadré", Styles: map[string]any{"backgroundColor": "#f5f5f5", "padding": "16px"}},
				{ID: "inline", Name: "En ligne", Description: "Sur une ligne"},
			},
			ConfigFields: []ConfigField{
				{Key: "title", Label: "Titre", Type: "text"},
				{Key: "phone", Label: "Téléphone", Type: "text"},
				{Key: "email", Label: "Email", Type: "text"},
				{Key: "address", Label: "Adresse", Type: "textarea"},
				{Key: "website", Label: "Site web", Type: "text"},
			},
		},

		// ============== LAYOUT ==============
		{
			ID:          "SPACER",
			Name:        "Espacement",
			Category:    CategoryLayout,
			Description: "Espace vertical entre modules",
			Resizable:   true,
			DefaultSize: Size{Width: 100, Height: 5},
			DefaultConfig: map[string]any{
				"height": 40,
			},
			Themes: []Theme{
				{ID: "empty", Name: "Vide", Description: "Espace blanc"},
				{ID: "line", Name: "Ligne", Description: "Avec séparateur", Styles: map[string]any{"borderBottom": "1px solid #e8e8e8"}},
				{ID: "dashed", Name: "Pointillés", Description: "Ligne pointillée", Styles: map[string]any{"borderBottom": "2px dashed #e8e8e8"}},
			},
			ConfigFields: []ConfigField{
				{Key: "height", Label: "Hauteur (px)", Type: "number", Default: 40},
			},
		},
		{
			ID:          "DIVIDER",
			Name:        "Séparateur",
			Category:    CategoryLayout,
			Description: "Ligne de séparation horizontale",
			Resizable:   false,
			DefaultConfig: map[string]any{
				"style":     "solid",
				"thickness": 1,
				"color":     "#e8e8e8",
				"margin":    20,
			},
			Themes: []Theme{
				{ID: "solid", Name: "Solide", Description: "Ligne continue"},
				{ID: "dashed", Name: "Tirets", Description: "Ligne en tirets", Styles: map[string]any{"borderStyle": "dashed"}},
				{ID: "dotted", Name: "Points", Description: "Ligne pointillée", Styles: map[string]any{"borderStyle": "dotted"}},
				{ID: "double", Name: "Double", Description: "Double ligne", Styles: map[string]any{"borderStyle": "double", "borderWidth": "3px"}},
			},
			ConfigFields: []ConfigField{
				{Key: "thickness", Label: "Épaisseur (px)", Type: "number", Default: 1},
				{Key: "color", Label: "Couleur", Type: "color", Default: "#e8e8e8"},
				{Key: "margin", Label: "Marge (px)", Type: "number", Default: 20},
			},
		},
		{
			ID:          "PAGE_BREAK",
			Name:        "Saut de page",
			Category:    CategoryLayout,
			Description: "Force un saut de page à l'impression",
			Resizable:   false,
		},
		{
			ID:          "COMPANY_HEADER",
			Name:        "En-tête Entreprise",
			Category:    CategoryLayout,
			Description: "Logo et coordonnées de votre entreprise",
			Resizable:   true,
			DefaultSize: Size{Width: 50, Height: 20},
			DefaultConfig: map[string]any{
				"showLogo":     true,
				"logoPosition": "left",
				"showName":     true,
				"showAddress":  true,
				"showPhone":    true,
				"showEmail":    true,
				"showTVA":      true,
				"showWebsite":  false,
				"layout":       "horizontal",
			},
			Themes: []Theme{
				{ID: "modern", Name: "Moderne", Description: "Style épuré avec accent de couleur", Styles: map[string]any{"borderLeft": "4px solid", "paddingLeft": "16px"}},
				{ID: "classic", Name: "Classique", Description: "Style traditionnel"},
				{ID: "minimal", Name: "Minimaliste", Description: "Logo + nom seulement", Styles: map[string]any{"opacity": 0.9}},
				{ID: "boxed", Name: "Encadré", Description: "Dans un cadre", Styles: map[string]any{"border": "1px solid #e8e8e8", "padding": "16px"}},
			},
			ConfigFields: []ConfigField{
				{Key: "logo", Label: "Logo", Type: "image", Group: "logo"},
				{Key: "logoSize", Label: "Taille logo (px)", Type: "number", Default: 80, Group: "logo"},
				{Key: "companyName", Label: "Nom entreprise", Type: "text"},
				{Key: "companyNameBinding", Label: "Lier le nom", Type: "data-binding", Group: "data"},
				{Key: "address", Label: "Adresse", Type: "textarea"},
				{Key: "phone", Label: "Téléphone", Type: "text"},
				{Key: "email", Label: "Email", Type: "text"},
				{Key: "tva", Label: "N° TVA", Type: "text"},
				{Key: "website", Label: "Site web", Type: "text"},
				{Key: "layout", Label: "Disposition", Type: "select", Options: []FieldOption{{Value: "horizontal", Label: "Horizontale"}, {Value: "vertical", Label: "Verticale"}, {Value: "compact", Label: "Compacte"}}},
			},
		},
		{
			ID:          "CLIENT_HEADER",
			Name:        "En-tête Client",
			Category:    CategoryLayout,
			Description: "Coordonnées du client destinataire",
			Resizable:   true,
			DefaultSize: Size{Width: 50, Height: 20},
			DefaultConfig: map[string]any{
				"title":       "À l'attention de:",
				"showTitle":   true,
				"showName":    true,
				"showCompany": true,
				"showAddress": true,
				"showEmail":   true,
				"showPhone":   true,
				"showTVA":     false,
			},
			Themes: []Theme{
				{ID: "standard", Name: "Standard", Description: "Style classique"},
				{ID: "boxed", Name: "Encadré", Description: "Dans un cadre", Styles: map[string]any{"border": "1px solid #e8e8e8", "padding": "16px"}},
				{ID: "highlighted", Name: "Mis en avant", Description: "Fond coloré", Styles: map[string]any{"backgroundColor": "#f9f9f9", "padding": "16px"}},
				{ID: "minimal", Name: "Minimaliste", Description: "Sans cadre"},
			},
			ConfigFields: []ConfigField{
				{Key: "title", Label: "Titre", Type: "text", Default: "À l'attention de:"},
				{Key: "clientName", Label: "Nom client", Type: "text"},
				{Key: "clientNameBinding", Label: "Lier le nom", Type: "data-binding", Group: "data"},
				{Key: "clientCompany", Label: "Société", Type: "text"},
				{Key: "clientAddress", Label: "Adresse", Type: "textarea"},
				{Key: "clientEmail", Label: "Email", Type: "text"},
				{Key: "clientPhone", Label: "Téléphone", Type: "text"},
			},
		},
		{
			ID:          "DOCUMENT_HEADER",
			Name:        "En-tête Document",
			Category:    CategoryLayout,
			Description: "Entreprise + Client côte à côte",
			Resizable:   true,
			DefaultSize: Size{Width: 100, Height: 25},
			DefaultConfig: map[string]any{
				"showLogo":        true,
				"showCompanyInfo": true,
				"showClientInfo":  true,
				"layout":          "side-by-side",
			},
			Themes: []Theme{
				{ID: "modern", Name: "Moderne", Description: "Style épuré avec séparation"},
				{ID: "classic", Name: "Classique", Description: "Style traditionnel"},
				{ID: "bordered", Name: "Bordé", Description: "Avec bordure inférieure", Styles: map[string]any{"borderBottom": "2px solid #e8e8e8"}},
			},
			ConfigFields: []ConfigField{
				{Key: "logo", Label: "Logo entreprise", Type: "image"},
				{Key: "companyName", Label: "Nom entreprise", Type: "text"},
				{Key: "companyAddress", Label: "Adresse entreprise", Type: "textarea"},
				{Key: "clientTitle", Label: "Titre client", Type: "text", Default: "Client:"},
				{Key: "clientName", Label: "Nom client", Type: "text"},
				{Key: "clientAddress", Label: "Adresse client", Type: "textarea"},
				{Key: "layout", Label: "Disposition", Type: "select", Options: []FieldOption{{Value: "side-by-side", Label: "Côte à côte"}, {Value: "stacked", Label: "Empilé"}}},
			},
		},
		{
			ID:          "DOCUMENT_FOOTER",
			Name:        "Pied de page",
			Category:    CategoryLayout,
			Description: "Pied de page avec infos entreprise",
			Resizable:   true,
			DefaultSize: Size{Width: 100, Height: 10},
			DefaultConfig: map[string]any{
				"showCompanyInfo":  true,
				"showBankInfo":     true,
				"showPageNumber":   true,
				"showLegalMention": true,
				"layout":           "centered",
			},
			Themes: []Theme{
				{ID: "modern", Name: "Moderne", Description: "Style épuré", Styles: map[string]any{"borderTop": "2px solid #e8e8e8"}},
				{ID: "classic", Name: "Classique", Description: "Style traditionnel", Styles: map[string]any{"borderTop": "1px solid #000"}},
				{ID: "minimal", Name: "Minimaliste", Description: "Discret", Styles: map[string]any{"opacity": 0.7, "fontSize": "10px"}},
				{ID: "boxed", Name: "Encadré", Description: "Dans un cadre", Styles: map[string]any{"backgroundColor": "#f5f5f5", "padding": "12px"}},
			},
			ConfigFields: []ConfigField{
				{Key: "companyName", Label: "Nom entreprise", Type: "text"},
				{Key: "companyPhone", Label: "Téléphone", Type: "text"},
				{Key: "companyEmail", Label: "Email", Type: "text"},
				{Key: "bankIBAN", Label: "IBAN", Type: "text"},
				{Key: "bankBIC", Label: "BIC", Type: "text"},
				{Key: "legalMention", Label: "Mention légale", Type: "textarea"},
				{Key: "fontSize", Label: "Taille texte (px)", Type: "number", Default: 10},
			},
		},
	}
}

func alignmentOptions() []FieldOption {
	return []FieldOption{
		{Value: "left", Label: "Gauche"},
		{Value: "center", Label: "Centré"},
		{Value: "right", Label: "Droite"},
	}
}

func currencyOptions() []FieldOption {
	return []FieldOption{
		{Value: "€", Label: "Euro (€)"},
		{Value: "$", Label: "Dollar ($)"},
		{Value: "£", Label: "Livre (£)"},
	}
}
