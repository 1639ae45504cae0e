package config

// Default returns the MyWai marketing site: the routes that get a static
// shell and the constants shared by every shell.
func Default() *SiteManifest {
	return &SiteManifest{
		Entry:    DefaultEntry,
		OutDir:   DefaultOutDir,
		Fallback: DefaultFallback,
		Site: Site{
			Lang:         "fr",
			Author:       "MyWai",
			TwitterSite:  "@mywai_officiel",
			Icon:         DefaultIcon,
			LoaderScript: "https://cdn.gpteng.co/gptengineer.js",
			ChatWidget: ChatWidget{
				ProjectID:  "67b73b1e5699df3f800082ef",
				VersionID:  "production",
				RuntimeURL: "https://general-runtime.voiceflow.com",
				VoiceURL:   "https://runtime-api.voiceflow.com",
				BundleURL:  "https://cdn.voiceflow.com/widget-next/bundle.mjs",
			},
		},
		Routes: []Route{
			{
				File:        "cgu.html",
				Path:        "/cgu",
				Title:       "Conditions Générales d'Utilisation - MyWai",
				Description: "Consultez les conditions générales d'utilisation de MyWai, notre service de création de biographies personnalisées avec l'IA.",
				OGTitle:     "CGU - MyWai",
			},
			{
				File:        "mentions-legales.html",
				Path:        "/mentions-legales",
				Title:       "Mentions Légales - MyWai",
				Description: "Consultez les mentions légales de MyWai, informations sur l'éditeur, l'hébergeur et la propriété intellectuelle.",
				OGTitle:     "Mentions Légales - MyWai",
			},
			{
				File:        "entreprise.html",
				Path:        "/entreprise",
				Title:       "Solutions Entreprise - MyWai",
				Description: "Découvrez les solutions MyWai pour les entreprises : biographies personnalisées et services sur mesure pour vos équipes.",
				OGTitle:     "Solutions Entreprise - MyWai",
			},
			{
				File:        "portfolio.html",
				Path:        "/portfolio",
				Title:       "Nos Réalisations - MyWai",
				Description: "Découvrez les biographies créées avec MyWai. Parcourez notre galerie de livres personnalisés pour anniversaires, départs en retraite, hommages et autres occasions spéciales.",
				OGTitle:     "Galerie des Réalisations - MyWai",
			},
			{
				File:        "blogue.html",
				Path:        "/blogue",
				Title:       "Blog - MyWai",
				Description: "Découvrez nos derniers articles, conseils et actualités autour de la transmission de mémoire.",
				OGTitle:     "Le Blogue - MyWai",
			},
			{
				File:        "404.html",
				Path:        "/404",
				Title:       "Page non trouvée - MyWai",
				Description: "La page que vous recherchez n'existe pas. Retournez à l'accueil de MyWai pour créer votre biographie personnalisée.",
				OGTitle:     "Page non trouvée - MyWai",
			},
		},
	}
}
