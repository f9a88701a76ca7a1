package seed

import "watchreview/internal/models"

// catalog is the fixed set of watches loaded into a fresh database. The
// application exposes no write endpoints for watches, so seeding is the only
// way entries get here.
var catalog = []models.Watch{
	{
		Name:          "Rolex Submariner",
		Brand:         "Rolex",
		Model:         "Submariner 116610LN",
		ImageURL:      "https://upload.wikimedia.org/wikipedia/commons/c/cd/Rolex-Submariner.jpg",
		StrapMaterial: "Oystersteel",
		MetalColor:    "Steel",
		Movement:      "Automatic",
		CaseSize:      40,
	},
	{
		Name:          "Omega Speedmaster",
		Brand:         "Omega",
		Model:         "Speedmaster Professional",
		ImageURL:      "https://upload.wikimedia.org/wikipedia/commons/0/06/Omega_speedmaster_reduced_351050.jpg",
		StrapMaterial: "Leather",
		MetalColor:    "Steel",
		Movement:      "Manual",
		CaseSize:      42,
	},
	{
		Name:          "Audemars Piguet Royal Oak",
		Brand:         "Audemars Piguet",
		Model:         "Royal Oak 15400",
		ImageURL:      "https://upload.wikimedia.org/wikipedia/commons/thumb/a/aa/Audemars_2385.jpg/1024px-Audemars_2385.jpg",
		StrapMaterial: "Leather",
		MetalColor:    "Steel",
		Movement:      "Automatic",
		CaseSize:      41,
	},
	{
		Name:          "Patek Philippe Nautilus",
		Brand:         "Patek Philippe",
		Model:         "Nautilus 5711",
		ImageURL:      "https://robbreport.com/wp-content/uploads/2022/10/PP_5811_1G_001_AMB_fond.jpg?w=1000",
		StrapMaterial: "Leather",
		MetalColor:    "Steel",
		Movement:      "Automatic",
		CaseSize:      40,
	},
	{
		Name:          "Seiko Presage",
		Brand:         "Seiko",
		Model:         "Presage Cocktail Time",
		ImageURL:      "https://seikousa.com/cdn/shop/files/SSA459_1_450x450.png?v=1686324996",
		StrapMaterial: "Leather",
		MetalColor:    "Silver",
		Movement:      "Automatic",
		CaseSize:      40,
	},
	{
		Name:          "Omega Seamaster",
		Brand:         "Omega",
		Model:         "Seamaster Diver 300M",
		ImageURL:      "https://upload.wikimedia.org/wikipedia/commons/e/e1/Bond-Omega.JPG",
		StrapMaterial: "Rubber",
		MetalColor:    "Steel",
		Movement:      "Automatic",
		CaseSize:      42,
	},
	{
		Name:          "Tag Heuer Monaco",
		Brand:         "Tag Heuer",
		Model:         "Monaco Caliber 11",
		ImageURL:      "https://www.tagheuer.com/on/demandware.static/-/Sites-tagheuer-master/default/dw6d697770/TAG_Heuer_Monaco/CAW211P.FC6356/CAW211P.FC6356_1000.png",
		StrapMaterial: "Leather",
		MetalColor:    "Steel",
		Movement:      "Automatic",
		CaseSize:      39,
	},
	{
		Name:          "AP Royal Oak Offshore",
		Brand:         "Audemars Piguet",
		Model:         "Royal Oak Offshore",
		ImageURL:      "https://upload.wikimedia.org/wikipedia/commons/thumb/7/7c/Royal_Oak_Offshore_watch_by_Audemars_Piguet.JPG/1280px-Royal_Oak_Offshore_watch_by_Audemars_Piguet.JPG",
		StrapMaterial: "Rubber",
		MetalColor:    "Steel",
		Movement:      "Automatic",
		CaseSize:      44,
	},
	{
		Name:          "Grand Seiko",
		Brand:         "Grand Seiko",
		Model:         "SBGA413",
		ImageURL:      "https://www.grand-seiko.com/us-en/-/media/Images/GlobalEn/GrandSeiko/Home/collections/Products/SBGA413/04_SHUNBUN-img02.jpg",
		StrapMaterial: "Leather",
		MetalColor:    "Silver",
		Movement:      "Spring Drive",
		CaseSize:      40,
	},
	{
		Name:          "Rolex Day-Date",
		Brand:         "Rolex",
		Model:         "Day-Date 40",
		ImageURL:      "https://media.rolex.com/image/upload/q_auto:eco/f_auto/t_v7-majesty/c_limit,w_800/v1/catalogue/2024/upright-c/m228238-0042",
		StrapMaterial: "Leather",
		MetalColor:    "Gold",
		Movement:      "Automatic",
		CaseSize:      40,
	},
	{
		Name:          "IWC Pilot",
		Brand:         "IWC",
		Model:         "Big Pilot",
		ImageURL:      "https://upload.wikimedia.org/wikipedia/commons/thumb/5/50/IWC_Big_Pilot_St_Exupery_Edition_%28cropped%29.jpg/800px-IWC_Big_Pilot_St_Exupery_Edition_%28cropped%29.jpg",
		StrapMaterial: "Leather",
		MetalColor:    "Steel",
		Movement:      "Automatic",
		CaseSize:      46,
	},
	{
		Name:          "Hublot Big Bang",
		Brand:         "Hublot",
		Model:         "Big Bang Unico",
		ImageURL:      "https://www.hublot.com/sites/default/files/styles/global_medium_desktop_1x/public/2023-04/Big-Bang-unico-king-gold-44-mm-Profile-shot-lifestyle.jpg",
		StrapMaterial: "Rubber",
		MetalColor:    "Gold",
		Movement:      "Automatic",
		CaseSize:      45,
	},
	{
		Name:          "Panerai Luminor",
		Brand:         "Panerai",
		Model:         "Luminor Marina 1950",
		ImageURL:      "https://www.newportwatchclub.com/cdn/shop/products/PaneraiPAM00352LuminorMarina19503Days_BoxShot_-1.jpg",
		StrapMaterial: "Leather",
		MetalColor:    "Steel",
		Movement:      "Automatic",
		CaseSize:      44,
	},
	{
		Name:          "Breguet Classique",
		Brand:         "Breguet",
		Model:         "Classique 5177",
		ImageURL:      "https://www.breguet.com/sites/default/files/images/5177BR299V6_Soldat.png",
		StrapMaterial: "Leather",
		MetalColor:    "Rose Gold",
		Movement:      "Automatic",
		CaseSize:      39,
	},
	{
		Name:          "Tag Heuer Carrera",
		Brand:         "Tag Heuer",
		Model:         "Carrera Caliber 16",
		ImageURL:      "https://www.tagheuer.com/on/demandware.static/-/Sites-tagheuer-master/default/dw5b3ae0a1/TAG_Heuer_Carrera/CV201AP.FC6429/CV201AP.FC6429_1000.png",
		StrapMaterial: "Leather",
		MetalColor:    "Steel",
		Movement:      "Automatic",
		CaseSize:      41,
	},
	{
		Name:          "Longines Master Collection",
		Brand:         "Longines",
		Model:         "Master Collection 40mm",
		ImageURL:      "https://api.ecom.longines.com/media/catalog/product/l/o/longines-master-collection-l2-793-4-78-3-bottom-detailed-view-2286x2000-51-1733406403.jpg",
		StrapMaterial: "Leather",
		MetalColor:    "Steel",
		Movement:      "Automatic",
		CaseSize:      40,
	},
	{
		Name:          "Jaeger-LeCoultre Reverso",
		Brand:         "Jaeger-LeCoultre",
		Model:         "Reverso Classic",
		ImageURL:      "https://upload.wikimedia.org/wikipedia/commons/thumb/7/70/Jaeger-LeCoultre-Reverso.jpg/800px-Jaeger-LeCoultre-Reverso.jpg",
		StrapMaterial: "Leather",
		MetalColor:    "Steel",
		Movement:      "Manual",
		CaseSize:      42,
	},
	{
		Name:          "Vacheron Constantin Overseas",
		Brand:         "Vacheron Constantin",
		Model:         "Overseas 4500V",
		ImageURL:      "https://www.vacheron-constantin.com/dam/vac/watches-wonders/2023/Overseas-Straps.jpg",
		StrapMaterial: "Rubber",
		MetalColor:    "Steel",
		Movement:      "Automatic",
		CaseSize:      41,
	},
	{
		Name:          "A. Lange & Söhne Saxonia",
		Brand:         "A. Lange & Söhne",
		Model:         "Saxonia Thin",
		ImageURL:      "https://img.alange-soehne.com/intro-block-media-3/af4444b7b7417a9de84a399dbb202f626a5de284.jpg",
		StrapMaterial: "Leather",
		MetalColor:    "Platinum",
		Movement:      "Manual",
		CaseSize:      40,
	},
	{
		Name:          "Breitling Navitimer",
		Brand:         "Breitling",
		Model:         "Navitimer 01",
		ImageURL:      "https://www-storefront.breitling.com/api/image-proxy/www-breitling.eu.saleor.cloud/media/thumbnails/products/ab0139241c1p1-three-quarter_fe4a57cf_thumbnail_1024.webp",
		StrapMaterial: "Leather",
		MetalColor:    "Steel",
		Movement:      "Automatic",
		CaseSize:      43,
	},
}
