package eval

// Categorical occupancy grids, one per luminance bin, run-length
// encoded row by row. Each character names one of the eleven basic
// color terms (see categoryCodes); '-' marks an unoccupied cell.
// Grids are 18 cells wide and 21 tall with 25-unit spacing in the
// 1e3-scaled chromaticity plane, offset by (160, 10).
var categoryData = map[int][]string{
	2: {
		"6p12-",
		"17p-",
		"b15p2r",
		"2b13p3r",
		"3b11p4r",
		"3b9p6r",
		"4b7p7r",
		"4b7p7r",
		"5b5p8r",
		"5b4p9r",
		"3b3k2p10r",
		"3b5k10r",
		"3gb5k5r4n",
		"4g5k9n",
		"5g4k9n",
		"7gk10n",
		"8g10n",
		"8g10n",
		"9g9n",
		"9g9n",
		"9g9n",
	},
	5: {
		"18-",
		"18-",
		"b10p7-",
		"2b13p3-",
		"3b11p4r",
		"3b9p6r",
		"4b7p7r",
		"4b7p7r",
		"5b5p8r",
		"5b4p9r",
		"6b2p10r",
		"4b3a11r",
		"3gb4a6r4n",
		"5g3a10n",
		"6g2a10n",
		"8g10n",
		"8g10n",
		"8g10n",
		"9g9n",
		"9g9n",
		"9g9n",
	},
	10: {
		"18-",
		"18-",
		"18-",
		"6-p11-",
		"3b6p9-",
		"3b8p7-",
		"4b7p2r5-",
		"4b7p4r3-",
		"5b5p7r-",
		"5b4p9r",
		"6b2p10r",
		"5bap11r",
		"3g2b2a11r",
		"5g3ao9r",
		"8g10o",
		"9g9o",
		"10g8o",
		"11g7o",
		"12g6o",
		"13g5o",
		"13g5o",
	},
	20: {
		"18-",
		"18-",
		"18-",
		"18-",
		"18-",
		"18-",
		"18-",
		"2-2b3p11-",
		"5b4p9-",
		"5b4pi8-",
		"6b2p3i7-",
		"6bp5i6-",
		"3g2b2a6i5-",
		"6ga2o5r4-",
		"7gy7o3-",
		"8gy7o2-",
		"8g2y7o-",
		"8g3y7o",
		"9g3y6o",
		"9g4y5o",
		"-8g4y5o",
	},
	30: {
		"18-",
		"18-",
		"18-",
		"18-",
		"18-",
		"18-",
		"18-",
		"18-",
		"18-",
		"4-b2p11-",
		"-5b2p10-",
		"-5bpi10-",
		"-2g2b2w2i9-",
		"-5gw2yi8-",
		"-6g4y7-",
		"-7g4y6-",
		"-7g4y6-",
		"2-6g5y5-",
		"2-7g5y4-",
		"2-7g6y3-",
		"2-7g6y3-",
	},
	40: {
		"18-",
		"18-",
		"18-",
		"18-",
		"18-",
		"18-",
		"18-",
		"18-",
		"18-",
		"18-",
		"18-",
		"4-2bp11-",
		"2-g2b2w11-",
		"-5gwy10-",
		"2-5g2y9-",
		"2-6gy9-",
		"3-5g2y8-",
		"3-5g3y7-",
		"3-6g2y7-",
		"4-5g3y6-",
		"4-5g4y5-",
	},
}
