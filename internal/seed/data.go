// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package seed

// releasedVarieties is the embedded reference catalog. Entries follow state
// agricultural university and ICAR release notifications; yields are
// indicative district-trial averages, not guarantees.
var releasedVarieties = []Variety{
	{
		ID:                  "RICE-UP-001",
		CropCode:            "RICE",
		CropName:            "Rice",
		Name:                "PB-1509",
		LocalName:           "पीबी-1509",
		Institute:           "Punjab Agricultural University, Ludhiana",
		ReleaseYear:         2013,
		States:              []string{"Punjab", "Haryana", "Uttar Pradesh"},
		Zones:               []string{"AEZ-04", "AEZ-05"},
		Seasons:             SeasonSuitability{Kharif: true},
		MaturityDays:        145,
		AverageYieldQtlHa:   45,
		PotentialYieldQtlHa: 55,
		Characteristics:     []string{"Basmati quality", "Medium slender grain", "Excellent cooking quality"},
		DiseaseResistance:   []string{"Blast resistant", "Bacterial leaf blight tolerant"},
		ClimateResilience:   []string{"Heat tolerant during flowering"},
		WaterRequirementMm:  900,
		HeatTolerant:        true,
		SeedRateKgHa:        20,
		Spacing:             "20cm x 15cm",
		Available:           true,
		SeedCostPerKg:       45,
	},
	{
		ID:                  "RICE-UP-002",
		CropCode:            "RICE",
		CropName:            "Rice",
		Name:                "HD-2967",
		LocalName:           "एचडी-2967",
		Institute:           "Indian Agricultural Research Institute, New Delhi",
		ReleaseYear:         2011,
		States:              []string{"Uttar Pradesh", "Punjab", "Haryana", "Madhya Pradesh"},
		Zones:               []string{"AEZ-04", "AEZ-05", "AEZ-10"},
		Seasons:             SeasonSuitability{Kharif: true},
		MaturityDays:        142,
		AverageYieldQtlHa:   48,
		PotentialYieldQtlHa: 60,
		Characteristics:     []string{"High yielding", "Long slender grain", "Good cooking quality"},
		DiseaseResistance:   []string{"Blast moderately resistant"},
		ClimateResilience:   []string{"Tolerant to temperature fluctuations"},
		WaterRequirementMm:  1000,
		HeatTolerant:        true,
		SeedRateKgHa:        20,
		Spacing:             "20cm x 15cm",
		Available:           true,
		SeedCostPerKg:       40,
	},
	{
		ID:                  "RICE-MH-001",
		CropCode:            "RICE",
		CropName:            "Rice",
		Name:                "WHD-1",
		LocalName:           "डब्ल्यूएचडी-1",
		Institute:           "Dr. Balasaheb Sawant Konkan Krishi Vidyapeeth, Dapoli",
		ReleaseYear:         2015,
		States:              []string{"Maharashtra", "Goa", "Karnataka"},
		Zones:               []string{"AEZ-06", "AEZ-07"},
		Seasons:             SeasonSuitability{Kharif: true},
		MaturityDays:        150,
		AverageYieldQtlHa:   42,
		PotentialYieldQtlHa: 52,
		Characteristics:     []string{"Suitable for coastal regions", "Medium slender grain"},
		DiseaseResistance:   []string{"Blast resistant", "Sheath blight tolerant"},
		ClimateResilience:   []string{"Salt tolerant", "Tolerant to high humidity"},
		WaterRequirementMm:  850,
		FloodTolerant:       true,
		SeedRateKgHa:        22,
		Spacing:             "20cm x 15cm",
		Available:           true,
		SeedCostPerKg:       42,
	},
	{
		ID:                  "WHEAT-UP-001",
		CropCode:            "WHEAT",
		CropName:            "Wheat",
		Name:                "HD-3086",
		LocalName:           "एचडी-3086",
		Institute:           "Indian Agricultural Research Institute, New Delhi",
		ReleaseYear:         2014,
		States:              []string{"Uttar Pradesh", "Punjab", "Haryana", "Madhya Pradesh"},
		Zones:               []string{"AEZ-04", "AEZ-05", "AEZ-10"},
		Seasons:             SeasonSuitability{Rabi: true},
		MaturityDays:        122,
		AverageYieldQtlHa:   50,
		PotentialYieldQtlHa: 65,
		Characteristics:     []string{"High yielding", "Early maturing", "Good grain quality"},
		DiseaseResistance:   []string{"Rust resistant", "Powdery mildew tolerant"},
		ClimateResilience:   []string{"Heat tolerant during grain filling"},
		WaterRequirementMm:  450,
		HeatTolerant:        true,
		SeedRateKgHa:        100,
		Spacing:             "22.5cm x 10cm",
		Available:           true,
		SeedCostPerKg:       25,
	},
	{
		ID:                  "WHEAT-PB-001",
		CropCode:            "WHEAT",
		CropName:            "Wheat",
		Name:                "DBW-187",
		LocalName:           "डीबीडब्ल्यू-187",
		Institute:           "Punjab Agricultural University, Ludhiana",
		ReleaseYear:         2017,
		States:              []string{"Punjab", "Haryana"},
		Zones:               []string{"AEZ-04"},
		Seasons:             SeasonSuitability{Rabi: true},
		MaturityDays:        135,
		AverageYieldQtlHa:   52,
		PotentialYieldQtlHa: 68,
		Characteristics:     []string{"Extra bold grain", "High protein content", "Excellent chapatti quality"},
		DiseaseResistance:   []string{"Rust resistant", "Leaf blight tolerant"},
		ClimateResilience:   []string{"Tolerant to terminal heat stress"},
		WaterRequirementMm:  500,
		HeatTolerant:        true,
		SeedRateKgHa:        100,
		Spacing:             "22.5cm x 10cm",
		Available:           true,
		SeedCostPerKg:       28,
	},
	{
		ID:                  "COTTON-MH-001",
		CropCode:            "COTTON",
		CropName:            "Cotton",
		Name:                "Bt Cotton Hybrid",
		LocalName:           "बीटी कॉटन संकर",
		Institute:           "Mahatma Phule Krishi Vidyapeeth, Rahuri",
		ReleaseYear:         2018,
		States:              []string{"Maharashtra", "Gujarat", "Madhya Pradesh"},
		Zones:               []string{"AEZ-06", "AEZ-09", "AEZ-10"},
		Seasons:             SeasonSuitability{Kharif: true},
		MaturityDays:        160,
		AverageYieldQtlHa:   18,
		PotentialYieldQtlHa: 25,
		Characteristics:     []string{"Bt technology", "Pink bollworm resistant", "Medium staple"},
		DiseaseResistance:   []string{"Cotton leaf curl disease tolerant"},
		ClimateResilience:   []string{"Drought tolerant", "Heat tolerant"},
		WaterRequirementMm:  550,
		DroughtTolerant:     true,
		HeatTolerant:        true,
		SeedRateKgHa:        1.5,
		Spacing:             "90cm x 60cm",
		Available:           true,
		SeedCostPerKg:       850,
	},
	{
		ID:                  "SOY-MP-001",
		CropCode:            "SOYBEAN",
		CropName:            "Soybean",
		Name:                "JS-335",
		LocalName:           "जेएस-335",
		Institute:           "Jawaharlal Nehru Krishi Vishwa Vidyalaya, Jabalpur",
		ReleaseYear:         2008,
		States:              []string{"Madhya Pradesh", "Maharashtra", "Rajasthan"},
		Zones:               []string{"AEZ-09", "AEZ-10"},
		Seasons:             SeasonSuitability{Kharif: true},
		MaturityDays:        95,
		AverageYieldQtlHa:   24,
		PotentialYieldQtlHa: 32,
		Characteristics:     []string{"Early maturing", "Semi-determinate growth habit", "Bold seed"},
		DiseaseResistance:   []string{"Mosaic virus resistant", "Rust tolerant"},
		ClimateResilience:   []string{"Drought tolerant", "Low input requirement"},
		WaterRequirementMm:  400,
		DroughtTolerant:     true,
		SeedRateKgHa:        65,
		Spacing:             "45cm x 5cm",
		Available:           true,
		SeedCostPerKg:       55,
	},
	{
		ID:                  "GNDT-AP-001",
		CropCode:            "GROUNDNUT",
		CropName:            "Groundnut",
		Name:                "TAG-24",
		LocalName:           "टीएजी-24",
		Institute:           "Acharya N.G. Ranga Agricultural University, Hyderabad",
		ReleaseYear:         1995,
		States:              []string{"Andhra Pradesh", "Telangana", "Karnataka", "Tamil Nadu"},
		Zones:               []string{"AEZ-06", "AEZ-07", "AEZ-08"},
		Seasons:             SeasonSuitability{Kharif: true, Zaid: true},
		MaturityDays:        110,
		AverageYieldQtlHa:   28,
		PotentialYieldQtlHa: 38,
		Characteristics:     []string{"Spanish bunch type", "Bold kernels", "High oil content"},
		DiseaseResistance:   []string{"Tikka disease tolerant", "Rust tolerant"},
		ClimateResilience:   []string{"Drought tolerant", "Heat tolerant"},
		WaterRequirementMm:  450,
		DroughtTolerant:     true,
		HeatTolerant:        true,
		SeedRateKgHa:        120,
		Spacing:             "30cm x 10cm",
		Available:           true,
		SeedCostPerKg:       65,
	},
	{
		ID:                  "MST-UP-001",
		CropCode:            "MUSTARD",
		CropName:            "Mustard",
		Name:                "Varuna",
		LocalName:           "वरुणा",
		Institute:           "Chandra Shekhar Azad University of Agriculture & Technology, Kanpur",
		ReleaseYear:         1988,
		States:              []string{"Uttar Pradesh", "Rajasthan", "Madhya Pradesh"},
		Zones:               []string{"AEZ-04", "AEZ-05", "AEZ-09", "AEZ-10"},
		Seasons:             SeasonSuitability{Rabi: true},
		MaturityDays:        110,
		AverageYieldQtlHa:   18,
		PotentialYieldQtlHa: 25,
		Characteristics:     []string{"High yielding", "Bold seed", "High oil content (40%)"},
		DiseaseResistance:   []string{"Alternaria blight tolerant", "White rust tolerant"},
		ClimateResilience:   []string{"Heat tolerant", "Cold tolerant"},
		WaterRequirementMm:  350,
		DroughtTolerant:     true,
		HeatTolerant:        true,
		SeedRateKgHa:        5,
		Spacing:             "45cm x 15cm",
		Available:           true,
		SeedCostPerKg:       120,
	},
	{
		ID:                  "MAIZE-PB-001",
		CropCode:            "MAIZE",
		CropName:            "Maize",
		Name:                "PMH-1",
		LocalName:           "पीएमएच-1",
		Institute:           "Punjab Agricultural University, Ludhiana",
		ReleaseYear:         2010,
		States:              []string{"Punjab", "Haryana", "Uttar Pradesh"},
		Zones:               []string{"AEZ-04", "AEZ-05"},
		Seasons:             SeasonSuitability{Kharif: true, Zaid: true},
		MaturityDays:        95,
		AverageYieldQtlHa:   45,
		PotentialYieldQtlHa: 60,
		Characteristics:     []string{"Single cross hybrid", "Yellow flinty grain", "High starch content"},
		DiseaseResistance:   []string{"Maydis leaf blight resistant", "Turcicum leaf blight tolerant"},
		ClimateResilience:   []string{"Heat tolerant during flowering"},
		WaterRequirementMm:  500,
		HeatTolerant:        true,
		SeedRateKgHa:        20,
		Spacing:             "60cm x 20cm",
		Available:           true,
		SeedCostPerKg:       250,
	},
	{
		ID:                  "SGCN-UP-001",
		CropCode:            "SUGARCANE",
		CropName:            "Sugarcane",
		Name:                "Co-0238",
		LocalName:           "को-0238",
		Institute:           "ICAR-Sugarcane Breeding Institute Regional Centre, Karnal",
		ReleaseYear:         2009,
		States:              []string{"Uttar Pradesh", "Haryana", "Punjab", "Uttarakhand"},
		Zones:               []string{"AEZ-04", "AEZ-05"},
		Seasons:             SeasonSuitability{Rabi: true, Zaid: true},
		MaturityDays:        360,
		AverageYieldQtlHa:   800,
		PotentialYieldQtlHa: 950,
		Characteristics:     []string{"High sugar recovery", "Good ratooning ability", "Erect canes resist lodging"},
		DiseaseResistance:   []string{"Smut tolerant"},
		ClimateResilience:   []string{"Performs under late planting", "Water stress tolerant at tillering"},
		WaterRequirementMm:  1800,
		HeatTolerant:        true,
		SeedRateKgHa:        6000,
		Spacing:             "90cm row spacing",
		Available:           true,
		SeedCostPerKg:       4,
	},
	{
		ID:                  "PMLT-HR-001",
		CropCode:            "PEARL_MILLET",
		CropName:            "Pearl Millet (Bajra)",
		Name:                "HHB-67 Improved",
		LocalName:           "एचएचबी-67 उन्नत",
		Institute:           "Chaudhary Charan Singh Haryana Agricultural University, Hisar",
		ReleaseYear:         2005,
		States:              []string{"Haryana", "Rajasthan", "Gujarat"},
		Zones:               []string{"AEZ-02"},
		Seasons:             SeasonSuitability{Kharif: true},
		MaturityDays:        70,
		AverageYieldQtlHa:   20,
		PotentialYieldQtlHa: 27,
		Characteristics:     []string{"Extra early maturity", "Escapes terminal drought", "Suitable for arid tracts"},
		DiseaseResistance:   []string{"Downy mildew resistant"},
		ClimateResilience:   []string{"Drought tolerant", "Heat tolerant"},
		WaterRequirementMm:  250,
		DroughtTolerant:     true,
		HeatTolerant:        true,
		SeedRateKgHa:        4,
		Spacing:             "45cm x 15cm",
		Available:           true,
		SeedCostPerKg:       130,
	},
	{
		ID:                  "PULS-MH-001",
		CropCode:            "PULSES",
		CropName:            "Pulses (Tur/Arhar)",
		Name:                "ICPL-87119 (Asha)",
		LocalName:           "आशा",
		Institute:           "International Crops Research Institute for the Semi-Arid Tropics, Hyderabad",
		ReleaseYear:         1993,
		States:              []string{"Maharashtra", "Madhya Pradesh", "Karnataka", "Telangana"},
		Zones:               []string{"AEZ-06", "AEZ-10"},
		Seasons:             SeasonSuitability{Kharif: true},
		MaturityDays:        180,
		AverageYieldQtlHa:   15,
		PotentialYieldQtlHa: 22,
		Characteristics:     []string{"Medium duration pigeon pea", "Bold reddish-brown seed", "Wide adaptability"},
		DiseaseResistance:   []string{"Fusarium wilt resistant", "Sterility mosaic resistant"},
		ClimateResilience:   []string{"Drought tolerant"},
		WaterRequirementMm:  400,
		DroughtTolerant:     true,
		SeedRateKgHa:        12,
		Spacing:             "90cm x 20cm",
		Available:           true,
		SeedCostPerKg:       110,
	},
	{
		ID:                  "SNFL-KA-001",
		CropCode:            "SUNFLOWER",
		CropName:            "Sunflower",
		Name:                "KBSH-44",
		LocalName:           "केबीएसएच-44",
		Institute:           "University of Agricultural Sciences, Bangalore",
		ReleaseYear:         2004,
		States:              []string{"Karnataka", "Andhra Pradesh", "Tamil Nadu", "Maharashtra"},
		Zones:               []string{"AEZ-06", "AEZ-07", "AEZ-08"},
		Seasons:             SeasonSuitability{Kharif: true, Rabi: true, Zaid: true},
		MaturityDays:        105,
		AverageYieldQtlHa:   16,
		PotentialYieldQtlHa: 22,
		Characteristics:     []string{"Photo-insensitive hybrid", "High oil content (38-40%)", "Uniform maturity"},
		DiseaseResistance:   []string{"Downy mildew tolerant", "Alternaria leaf spot tolerant"},
		ClimateResilience:   []string{"Fits all three seasons", "Moderate drought tolerance"},
		WaterRequirementMm:  500,
		DroughtTolerant:     true,
		HeatTolerant:        true,
		SeedRateKgHa:        5,
		Spacing:             "60cm x 30cm",
		Available:           true,
		SeedCostPerKg:       450,
	},
	{
		ID:                  "POT-UP-001",
		CropCode:            "POTATO",
		CropName:            "Potato",
		Name:                "Kufri Bahar",
		LocalName:           "कुफरी बहार",
		Institute:           "ICAR-Central Potato Research Institute, Shimla",
		ReleaseYear:         1980,
		States:              []string{"Uttar Pradesh", "Bihar", "Punjab"},
		Zones:               []string{"AEZ-04", "AEZ-05"},
		Seasons:             SeasonSuitability{Rabi: true},
		MaturityDays:        100,
		AverageYieldQtlHa:   250,
		PotentialYieldQtlHa: 320,
		Characteristics:     []string{"Large white oval tubers", "Early bulking", "Good keeping quality"},
		DiseaseResistance:   []string{"Moderately resistant to early blight"},
		ClimateResilience:   []string{"Performs in short winter days"},
		WaterRequirementMm:  500,
		SeedRateKgHa:        2500,
		Spacing:             "60cm x 20cm",
		Available:           true,
		SeedCostPerKg:       30,
	},
}
