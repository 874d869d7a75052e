package catalog

import "github.com/shopspring/decimal"

var d = decimal.RequireFromString

// BasicCremationContainer is the minimum-requirement casket. Its presence in
// the casket description field triggers the promotional PST exemption on B1.
const BasicCremationContainer = "Basic Cremation Container"

// builtin holds the maintained price tables. Prices are replaced wholesale
// when the yearly price lists change; labels are looked up exactly.
var builtin = map[Kind]map[string]decimal.Decimal{
	KindViewing: {
		"Evening Prayers (includes Staff)": d("695.00"),
		"Viewing at New West":              d("500.00"),
		"Viewing at Burnaby":               d("895.00"),
		"Viewing at Vancouver":             d("895.00"),
		"Viewing after 5PM (per hour)":     d("150.00"),
		"Afterhours Visitation Staff":      d("695.00"),
		"St Clare of Assisi Hall Viewing":  d("500.00"),
		"St Clare of Assisi Hall Service":  d("1200.00"),
	},

	KindLimousine: {
		"KFS Limousine (4 hour use)": d("695.00"),
		"KFS Horse Drawn Carriage":   d("2500.00"),
	},

	KindCasket: {
		BasicCremationContainer:                  d("395.00"),
		"125 Oak Veneer":                         d("2195.00"),
		"Aspen Pine":                             d("1795.00"),
		"Moka Pine":                              d("1795.00"),
		"Brownsville Pine":                       d("1995.00"),
		"Brownsville Pine (oversize)":            d("3595.00"),
		"Brownsville Cedar":                      d("3595.00"),
		"Brownsville Cedar (without blanket or paddle handles)": d("2695.00"),
		"60 Ash":                                 d("2695.00"),
		"Windfield PC":                           d("3560.00"),
		"Wheat Maple":                            d("2995.00"),
		"Atlantic Poplar":                        d("2995.00"),
		"Stewart Ash":                            d("3495.00"),
		"Heavenly White Poplar":                  d("3695.00"),
		"Langara - Pawlownia":                    d("3595.00"),
		"Riley - Poplar":                         d("3695.00"),
		"700 Octagon Oak":                        d("4195.00"),
		"725 Octagon Oak":                        d("4195.00"),
		"Branson - Poplar":                       d("3695.00"),
		"Apostle Oak":                            d("4395.00"),
		"Stanley Oak":                            d("4195.00"),
		"Sherwood Oak":                           d("3895.00"),
		"Homeward - Poplar":                      d("4295.00"),
		"Basilica - Poplar":                      d("4895.00"),
		"Lotus - Poplar":                         d("4695.00"),
		"Michelangelo - Maple":                   d("5795.00"),
		"Carnaby Poplar":                         d("3995.00"),
		"Morgan Cherry":                          d("8188.00"),
		"Ambassador Full Couch - Mahogany":       d("7195.00"),
		"168 Oak Full Couch":                     d("5795.00"),
		"Diplomat - Mahogany":                    d("9888.00"),
		"Executive Full Couch - Mahogany":        d("9888.00"),
		"Dynasty - Mahogany":                     d("14888.00"),
		"Misty Blue - 18 gauge steel":            d("3995.00"),
		"Capilano Blue - 18 gauge steel":         d("3995.00"),
		"Nelson Brown - 18 gauge steel":          d("3995.00"),
		"Deauville White - 18 gauge steel":       d("4395.00"),
		"Aurora Copper - 32 oz Brushed Copper":   d("10495.00"),
		"Natura":                                 d("3195.00"),
		"Willow":                                 d("2995.00"),
		"Bamboo shroud with use of Ceremonial willow carrier": d("755.00"),
		"Seagrass":                               d("3495.00"),
		"Eco Pine w/ rope handles and simple lining":            d("695.00"),
		"Eco Pine w/ rope handles and simple lining (oversize)": d("1095.00"),
		"Mazri":                                  d("795.00"),
		"Mazri (Oversized)":                      d("1795.00"),
		"30 Grey":                                d("1075.00"),
		"Genoa":                                  d("2195.00"),
		"Navy Tabor":                             d("2095.00"),
		"White Ventura":                          d("2195.00"),
		"Dominion Maple Ceremonial (Rental casket)": d("1795.00"),
		"Northgate Oak Ceremonial (Rental casket)":  d("1355.00"),
		"Burlington Cremation Container":         d("795.00"),
		"McConnell Cremation Container":          d("995.00"),
		"BP2 - BC Pine":                          d("1195.00"),
		"BP2 - BC Pine (oversize)":               d("1395.00"),
		"BPO - BC Pine":                          d("695.00"),
		"BPO - BC Pine (oversize)":               d("795.00"),
		"Basic Wooden (Oversize Wooden)":         d("495.00"),
		"Cremation Tray (Minimum requirement)":   d("395.00"),
	},

	KindUrn: {
		"Basic Cardboard Urn":                      d("35.00"),
		"Cherry/Maple/Walnut":                      d("475.00"),
		"LGV original series Natural/Red/Ebony":    d("895.00"),
		"LGV ecologique series Natural/Red/Ebony":  d("695.00"),
		"LGV Keepsake Natural/Red/Ebony":           d("195.00"),
		"Sheesham":                                 d("250.00"),
		"Sheesham Small":                           d("85.00"),
		"Providence Mahogany/Oak":                  d("400.00"),
		"Winchester Cherry/Oak":                    d("475.00"),
		"Hamilton Cherry/Natural":                  d("175.00"),
		"Hamilton Keepsake Cherry/Natural":         d("75.00"),
		"Photo Urn Cherry/Natural/Black":           d("250.00"),
		"Photo Urn Keepsake Cherry/Natural/Black":  d("95.00"),
		"Metro Mantel Urn":                         d("495.00"),
		"Cathedral Ivory/Forest Green":             d("445.00"),
		"Round Marble":                             d("650.00"),
		"Rectangular Marble":                       d("595.00"),
		"Modern Companion Urn Collection":          d("695.00"),
		"Together Forever Companion (EA1007-E)":    d("1095.00"),
		"Divine Square Companion":                  d("1095.00"),
		"Divine Heart Companion":                   d("1195.00"),
		"Aria Wheat/Bird/Tree/Butterfly/Rose":      d("485.00"),
		"Aria Heart Wheat/Bird/Tree/Butterfly/Rose":    d("115.00"),
		"Aria Keepsake Wheat/Bird/Tree/Butterfly/Rose": d("65.00"),
		"Classic Going Home":                       d("395.00"),
		"Classic Going Home Heart":                 d("115.00"),
		"Classic Going Home Keepsake":              d("65.00"),
		"Mother of Pearl Aristocrat":               d("495.00"),
		"Mother of Pearl Keepsake":                 d("65.00"),
		"Aristocrat Going Home":                    d("445.00"),
		"Aristocrat Going Home Heart":              d("115.00"),
		"Quad Gold or Copper (Incl. 1 emblem)":     d("595.00"),
		"Aristocrat Going Home Keepsake":           d("65.00"),
		"Aristocrat Black & Gold":                  d("495.00"),
		"Aristocrat Black & Gold Keepsake":         d("65.00"),
		"Classic Bronze/Pewter":                    d("395.00"),
		"Classic Heart Bronze/Pewter":              d("115.00"),
		"Classic Keepsake Bronze/Pewter":           d("65.00"),
		"Trinity Midnight Blue/Pearl White":        d("495.00"),
		"Trinity Heart Midnight Blue/Pearl White":  d("115.00"),
		"Trinity Keepsake Midnight Blue/Pearl White": d("75.00"),
		"Grecian Crimson Red/Rustic Bronze/Pewter": d("495.00"),
		"Grecian Keepsake Red/Bronze/Pewter":       d("85.00"),
		"Monterey Purple/Blue/Ruby":                d("445.00"),
		"Monterey Keepsake Purple/Blue/Ruby":       d("85.00"),
		"Anoka Shimmering Grey/Blue":               d("515.00"),
		"Anoka Keepsake Shimmering Grey/Blue":      d("85.00"),
		"Celeste Charcoal/Pearl/Indigo":            d("445.00"),
		"Celeste Heart Charcoal/Pearl/Indigo":      d("115.00"),
		"Celeste Keepsake Charcoal/Pearl/Indigo":   d("75.00"),
		"Blessing":                                 d("595.00"),
		"Blessing Keepsake Pearl":                  d("145.00"),
		"Monarch Jali":                             d("595.00"),
		"Monarch Jali Keepsake":                    d("145.00"),
		"LoveBird Bronze/Midnight":                 d("635.00"),
		"LoveBird Keepsake Bronze/Midnight":        d("165.00"),
		"LoveHeart Pearl/Red":                      d("495.00"),
		"LoveHeart Medium Blue/Pink":               d("295.00"),
		"CuddleBear Medium Blue/Pink":              d("375.00"),
		"Wings of Hope Pink/Blue/Pearl":            d("495.00"),
		"Wing of Hope Medium Pink/Blue/Pearl":      d("295.00"),
		"Saturn Bronze":                            d("595.00"),
		"Art Deco Classic":                         d("495.00"),
		"Art Deco Classic Keepsake":                d("165.00"),
		"Adore Bronze/Midnight":                    d("635.00"),
		"Adore Keepsake Bronze/Midnight":           d("165.00"),
		"Bright Silver Keepsake Heart":             d("165.00"),
		"Bright Silver Keepsake Star":              d("165.00"),
		"Brushed Gold Keepsake Star":               d("165.00"),
		"Pride Rainbow":                            d("395.00"),
		"Pride Rainbow Heart Keepsake":             d("115.00"),
		"Pride Rainbow Tealight Urn":               d("175.00"),
		"Tealight Urn Bronze/Midnight":             d("175.00"),
		"Pearl Tealight Urn Lavender/Pink/Blue":    d("175.00"),
		"Princess Cat Bronze/Midnight/Pearl":       d("195.00"),
		"Bright Silver Keepsake Paw":               d("95.00"),
		"Tall Pet Tealight Urn Bronze/Midnight":    d("295.00"),
		"Pet Tealight Urn Bronze/Midnight":         d("175.00"),
		"Etienne Autumn/Butterfly/Rose":            d("545.00"),
		"Etienne Keepsake Autumn/Butterfly/Rose":   d("135.00"),
		"Essence Opal":                             d("495.00"),
		"Essence Cloisonné Heart Opal":             d("135.00"),
		"Essence Keepsake Opal":                    d("135.00"),
		"Elite Pink/Blue":                          d("545.00"),
		"Elite Cloisonné Heart Pink/Blue":          d("135.00"),
		"Elite Keepsake Pink/Blue":                 d("135.00"),
		"Scattering Tubes (Variety)":               d("185.00"),
		"Scattering Tube Keepsake (Variety)":       d("65.00"),
		"Journey Earth Aqua/Navy/Natural/Green":    d("295.00"),
		"Journey Keepsake Aqua/Navy/Natural/Green": d("95.00"),
		"Bios Urn":                                 d("275.00"),
		"Himalayan Rock Salt":                      d("545.00"),
		"Himalayan Salt Keepsake":                  d("295.00"),
		"Embrace Autumn Leaves":                    d("295.00"),
		"Turtle":                                   d("495.00"),
		"Turtle Small Keepsake":                    d("195.00"),
		"Oceane Natural Urn":                       d("545.00"),
		"Oceane Natural Urn Keepsake":              d("195.00"),
		"Bamboo Simplicity":                        d("295.00"),
		"Heart Urn (EA1002-E)":                     d("545.00"),
		"Heart Photo (EA4002-E)":                   d("145.00"),
		"Heart Keepsake (EA3002-E)":                d("145.00"),
		"Heart Candle (EA2002-E)":                  d("145.00"),
		"Sunrays Candle (EA3005-E)":                d("145.00"),
		"Seashells Candle (EA3006-E)":              d("145.00"),
		"InFlight (EA1001)":                        d("595.00"),
		"InFlight Keepsake (EA3001)":               d("145.00"),
		"Slate":                                    d("695.00"),
		"Slate keepsake":                           d("295.00"),
		"Resin Urn":                                d("445.00"),
		"Arielle Heart Pink/Blue":                  d("175.00"),
		"Teddybear Pink/Blue":                      d("145.00"),
		"Heart Stands (each)":                      d("20.00"),
		"Temporary plastic urn":                    d("40.00"),
		"Together Forever (EA5007) holds no remains":   d("125.00"),
		"Heart Plaque (EA5002-E)holds no remains":      d("145.00"),
		"Engraving (Name and Dates)":               d("155.00"),
		"Engraving (Per Line) Marble rectangle":    d("185.00"),
		"Sticker Back Tags (name and dates)":       d("65.00"),
		"Pendants (incl. satin string name and dates)": d("95.00"),
	},

	KindCrematorium: {
		"West Shore":                           d("745.00"),
		"Maple Ridge":                          d("945.00"),
		"Oversized - West Shore (300+)":        d("1045.00"),
		"Oversized - Maple Ridge (300+)":       d("1255.00"),
		"Watch Start Cremation (Maple Ridge)":  d("1495.00"),
	},

	KindMiscOther: {
		"Rush Cremation Fee (72 hours from registration)": d("350.00"),
		"Scheduled Start Cremation Fee (no family)":       d("1245.00"),
	},

	KindReceptionFacility: {
		"KFS New West Reception Room Rental (Disp Dishes, Coffee, Tea)": d("595.00"),
		"KFS New West Reception Room Rental (Glassware, Coffee, Tea)":   d("395.00"),
		"KFS Vancouver Reception Room Rental (Facility Only)":           d("795.00"),
	},

	KindWeekend: {
		"Sundays and Holiday Service Fee": d("895.00"),
		"Saturday Service Fee":            d("895.00"),
	},
}
