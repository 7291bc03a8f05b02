package munsell

// Renotation chromaticity rows, one per (value level, hue step).
// Value levels are 1..10, hue steps are 0..39 (2.5 Munsell hue units
// apart). Each row holds interleaved (x, y) pairs for chroma 0, 2, 4,
// ... scaled by 1e4 and second-order delta encoded: the first pair is
// absolute, the second holds first differences, and every following
// pair holds differences of differences. decodeRow integrates twice to
// recover the absolute chromaticities.
var renotationData = [10][40][]int16{
	{ // value 1
		{3101, 3161, 638, -201, -3, -16, -20, -7, -37, 2},
		{3101, 3161, 771, -80, 9, -57, -5, -31, -29, -19},
		{3101, 3161, 881, 47, 52, -71, 46, -45, 5, -42},
		{3101, 3161, 948, 149, 109, -62, 107, -44, 68, -48},
		{3101, 3161, 1004, 256, 176, -34, 207, -18},
		{3101, 3161, 1044, 368, 258, 15, 350, 45},
		{3101, 3161, 1067, 480, 349, 90, 547, 167},
		{3101, 3161, 1067, 626, 472, 228, 906, 462},
		{3101, 3161, 1029, 760, 576, 398, 1350, 953},
		{3101, 3161, 950, 871, 638, 575, 1775, 1616},
		{3101, 3161, 834, 950, 629, 720, 2002, 2280},
		{3101, 3161, 724, 984, 576, 782, 1933, 2596},
		{3101, 3161, 599, 995, 488, 791, 1654, 2635},
		{3101, 3161, 463, 982, 379, 748, 1230, 2420},
		{3101, 3161, 321, 946, 263, 663, 768, 2037},
		{3101, 3161, 154, 879, 133, 532, 317, 1502},
		{3101, 3161, -8, 789, 27, 391, 21, 1001, 58, 3227},
		{3101, 3161, -159, 683, -44, 257, -130, 607, -318, 1481},
		{3101, 3161, -295, 565, -78, 146, -177, 333, -338, 642},
		{3101, 3161, -435, 415, -67, 70, -162, 135, -239, 220},
		{3101, 3161, -558, 256, -29, 13, -100, 46, -128, 58},
		{3101, 3161, -660, 95, 17, -31, -30, -11, -23, -11},
		{3101, 3161, -739, -60, 63, -56, 37, -27, 52, -22},
		{3101, 3161, -807, -237, 116, -56, 101, -10, 107, 9},
		{3101, 3161, -840, -389, 152, -30, 143, 27, 132, 50, 111, 56},
		{3101, 3161, -838, -513, 163, 11, 167, 67, 137, 82, 108, 75},
		{3101, 3161, -804, -607, 155, 55, 165, 100, 138, 101, 101, 86},
		{3101, 3161, -768, -649, 142, 79, 155, 115, 130, 109, 99, 88},
		{3101, 3161, -721, -681, 125, 101, 140, 125, 120, 114, 92, 88},
		{3101, 3161, -663, -702, 104, 118, 121, 132, 108, 115, 85, 88},
		{3101, 3161, -595, -713, 81, 130, 100, 136, 94, 114, 75, 87},
		{3101, 3161, -517, -714, 56, 138, 79, 135, 77, 112, 64, 85},
		{3101, 3161, -429, -705, 31, 141, 56, 131, 59, 107, 51, 83},
		{3101, 3161, -333, -686, 10, 138, 32, 126, 40, 100, 38, 78},
		{3101, 3161, -228, -658, -10, 132, 12, 116, 20, 94, 23, 72},
		{3101, 3161, -97, -614, -27, 119, -8, 104, 0, 83, 5, 66},
		{3101, 3161, 41, -559, -35, 104, -24, 87, -14, 72},
		{3101, 3161, 183, -491, -35, 81, -30, 70, -23, 59},
		{3101, 3161, 327, -414, -29, 57, -29, 50, -27, 43},
		{3101, 3161, 487, -313, -15, 23, -24, 23, -28, 26},
	},
	{ // value 2
		{3101, 3161, 464, -144, 2, -11, -6, -6, -13, -2, -19, 1},
		{3101, 3161, 559, -52, 10, -33, -6, -28, -21, -21, -32, -16},
		{3101, 3161, 638, 45, 14, -56, -15, -52, -38, -45, -55, -35},
		{3101, 3161, 684, 119, 13, -71, -26, -72, -56, -65, -32, -29},
		{3101, 3161, 718, 194, 8, -85, -42, -93, -44, -65, 3, -20},
		{3101, 3161, 738, 268, 1, -96, -57, -109, 1, -45},
		{3101, 3161, 744, 339, -9, -102, -55, -111, 42, -21},
		{3101, 3161, 730, 429, -25, -103, -34, -92, 88, 15},
		{3101, 3161, 691, 509, -40, -94, -9, -54, 128, 65},
		{3101, 3161, 628, 575, -50, -72, 6, -12, 153, 129},
		{3101, 3161, 546, 624, -59, -41, 4, 25, 160, 197},
		{3101, 3161, 472, 648, -61, -15, -9, 44, 148, 238},
		{3101, 3161, 391, 659, -61, 13, -30, 51, 122, 262},
		{3101, 3161, 304, 657, -59, 38, -52, 50, 86, 262},
		{3101, 3161, 213, 641, -56, 59, -67, 47, 44, 229},
		{3101, 3161, 104, 606, -50, 72, -69, 51, -8, 160},
		{3101, 3161, -5, 552, -41, 77, -55, 65, -48, 75, 7, 204},
		{3101, 3161, -110, 484, -34, 67, -36, 65, -41, 58, -27, 68},
		{3101, 3161, -211, 403, -21, 48, -21, 50, -20, 47, -14, 41},
		{3101, 3161, -316, 299, -6, 21, -2, 20, 2, 19, 11, 13},
		{3101, 3161, -408, 187, 10, -5, 19, -8, 24, -11, 32, -15},
		{3101, 3161, -486, 74, 30, -26, 37, -27, 46, -26, 50, -26},
		{3101, 3161, -547, -36, 47, -39, 57, -31, 63, -26, 66, -17},
		{3101, 3161, -600, -165, 66, -38, 76, -23, 82, -7, 75, 3},
		{3101, 3161, -626, -278, 78, -26, 90, -1, 89, 16, 81, 27, 68, 29},
		{3101, 3161, -625, -372, 81, -5, 94, 24, 91, 37, 81, 44, 66, 42},
		{3101, 3161, -599, -445, 76, 19, 90, 46, 86, 54, 77, 55, 60, 49},
		{3101, 3161, -572, -478, 70, 33, 83, 55, 81, 63, 72, 59, 57, 50},
		{3101, 3161, -536, -504, 61, 46, 74, 65, 73, 66, 66, 62, 54, 52},
		{3101, 3161, -492, -521, 50, 56, 63, 71, 65, 69, 58, 63, 49, 52},
		{3101, 3161, -440, -531, 37, 65, 52, 74, 53, 71, 51, 62, 44, 51},
		{3101, 3161, -381, -533, 25, 71, 38, 75, 43, 71, 40, 60, 38, 50},
		{3101, 3161, -314, -527, 11, 74, 25, 74, 31, 68, 31, 59, 30, 47},
		{3101, 3161, -242, -514, 0, 74, 13, 73, 19, 63, 20, 56, 21, 44},
		{3101, 3161, -164, -493, -9, 71, 1, 68, 7, 60, 11, 50, 13, 42},
		{3101, 3161, -68, -460, -16, 65, -9, 61, -4, 53, 0, 45},
		{3101, 3161, 34, -418, -21, 57, -15, 51, -12, 45, -7, 39},
		{3101, 3161, 137, -367, -19, 46, -18, 40, -15, 35, -12, 33},
		{3101, 3161, 241, -307, -15, 30, -16, 29, -15, 26, -14, 23},
		{3101, 3161, 356, -230, -6, 11, -12, 13, -12, 13, -15, 13},
	},
	{ // value 3
		{3101, 3161, 362, -112, 2, -6, -1, -6, -5, -2, -9, -1, -11, -1},
		{3101, 3161, 435, -38, 9, -20, 1, -19, -8, -15, -14, -14, -19, -9},
		{3101, 3161, 497, 40, 11, -34, -1, -34, -14, -30, -26, -27, -32, -23},
		{3101, 3161, 532, 99, 14, -43, -7, -44, -23, -44, -38, -39, -46, -32},
		{3101, 3161, 559, 158, 11, -49, -13, -57, -34, -56, -52, -52, -60, -43},
		{3101, 3161, 574, 216, 10, -54, -23, -67, -47, -69, -66, -65, -39, -34},
		{3101, 3161, 580, 272, 3, -56, -30, -76, -62, -81, -66, -69, -6, -16},
		{3101, 3161, 569, 342, -3, -56, -44, -80, -77, -95, -40, -52},
		{3101, 3161, 540, 403, -12, -47, -55, -81, -84, -98, -10, -27},
		{3101, 3161, 492, 452, -19, -32, -61, -72, -86, -92, 5, -4},
		{3101, 3161, 429, 488, -26, -13, -63, -55, -85, -81, 5, 15},
		{3101, 3161, 372, 505, -28, 1, -62, -36, -85, -69, -3, 21},
		{3101, 3161, 309, 512, -30, 16, -58, -16, -81, -53, -21, 16},
		{3101, 3161, 241, 508, -30, 31, -53, 3, -72, -29, -46, -2},
		{3101, 3161, 170, 495, -29, 40, -47, 22, -62, -4, -60, -16, 1, 80},
		{3101, 3161, 85, 466, -28, 48, -38, 36, -48, 22, -55, -3, -35, 23},
		{3101, 3161, 0, 425, -25, 47, -29, 44, -36, 36, -40, 24, -39, 5},
		{3101, 3161, -84, 373, -19, 40, -21, 41, -25, 39, -23, 34, -25, 25},
		{3101, 3161, -163, 311, -13, 29, -13, 30, -12, 30, -12, 29, -10, 25},
		{3101, 3161, -246, 232, -5, 12, -2, 14, 0, 11, 2, 12, 6, 8},
		{3101, 3161, -320, 147, 6, -3, 10, -5, 11, -5, 16, -7, 19, -8},
		{3101, 3161, -382, 60, 17, -16, 21, -16, 25, -16, 28, -17, 30, -15},
		{3101, 3161, -431, -25, 27, -24, 32, -21, 38, -18, 38, -15, 40, -12},
		{3101, 3161, -473, -125, 37, -26, 44, -17, 50, -11, 48, -4, 48, 3},
		{3101, 3161, -495, -214, 45, -19, 53, -7, 56, 3, 54, 11, 50, 16},
		{3101, 3161, -494, -289, 46, -7, 55, 7, 59, 19, 55, 24, 50, 26, 43, 27},
		{3101, 3161, -474, -348, 44, 7, 53, 23, 55, 30, 52, 34, 48, 34, 40, 31},
		{3101, 3161, -452, -375, 40, 15, 49, 31, 51, 36, 49, 38, 44, 37, 38, 32},
		{3101, 3161, -423, -396, 34, 23, 43, 37, 47, 41, 44, 41, 41, 38, 35, 33},
		{3101, 3161, -387, -411, 26, 31, 37, 41, 40, 44, 40, 43, 35, 38, 32, 34},
		{3101, 3161, -346, -420, 20, 38, 28, 44, 34, 45, 32, 43, 32, 39, 27, 33},
		{3101, 3161, -299, -422, 13, 42, 20, 46, 25, 45, 26, 43, 26, 37, 23, 33},
		{3101, 3161, -246, -418, 5, 44, 12, 47, 18, 45, 18, 40, 19, 36, 19, 31},
		{3101, 3161, -189, -408, -1, 46, 5, 44, 9, 43, 11, 39, 14, 34, 12, 29},
		{3101, 3161, -127, -392, -7, 45, -2, 42, 3, 40, 4, 36, 7, 31},
		{3101, 3161, -51, -365, -11, 40, -8, 39, -4, 35, -2, 32, 0, 28},
		{3101, 3161, 28, -331, -13, 34, -10, 34, -9, 30, -7, 26, -5, 25},
		{3101, 3161, 109, -290, -12, 27, -12, 27, -9, 23, -10, 22, -8, 19},
		{3101, 3161, 189, -243, -8, 20, -10, 17, -10, 17, -8, 16, -10, 14},
		{3101, 3161, 279, -180, -4, 5, -6, 9, -6, 7, -9, 9, -8, 7},
	},
	{ // value 4
		{3101, 3161, 295, -91, 3, -4, 0, -5, -3, -2, -3, -1, -7, -1, -7, 0},
		{3101, 3161, 355, -29, 7, -15, 2, -12, -3, -11, -5, -11, -10, -8, -12, -7},
		{3101, 3161, 405, 35, 9, -23, 2, -22, -4, -21, -12, -21, -18, -18, -21, -15},
		{3101, 3161, 434, 84, 10, -28, 1, -30, -9, -29, -19, -29, -26, -26, -30, -23},
		{3101, 3161, 455, 133, 11, -33, -3, -36, -16, -38, -26, -37, -36, -35, -40, -29},
		{3101, 3161, 468, 181, 10, -36, -8, -41, -22, -47, -37, -46, -45, -43, -48, -36},
		{3101, 3161, 472, 226, 8, -35, -13, -47, -30, -53, -46, -54, -54, -52, -50, -40},
		{3101, 3161, 464, 283, 3, -34, -19, -48, -41, -60, -56, -65, -62, -59, -25, -26},
		{3101, 3161, 441, 332, -3, -28, -26, -45, -48, -63, -63, -69, -60, -61, -3, -9},
		{3101, 3161, 402, 371, -7, -17, -31, -38, -52, -59, -67, -71, -54, -55, 6, 3},
		{3101, 3161, 351, 399, -12, -4, -33, -27, -53, -48, -66, -65, -53, -52, 6, 12},
		{3101, 3161, 305, 411, -14, 6, -34, -15, -51, -36, -62, -56, -57, -52, 1, 15},
		{3101, 3161, 254, 416, -16, 15, -33, -2, -47, -23, -57, -42, -60, -51, -10, 9},
		{3101, 3161, 199, 413, -18, 22, -29, 11, -43, -8, -51, -26, -56, -41, -29, -12},
		{3101, 3161, 141, 401, -18, 29, -27, 20, -36, 7, -44, -8, -47, -24, -45, -31},
		{3101, 3161, 71, 378, -17, 31, -23, 29, -28, 20, -35, 11, -37, -3, -38, -17},
		{3101, 3161, 1, 344, -15, 31, -18, 31, -23, 28, -24, 21, -27, 16, -26, 5},
		{3101, 3161, -67, 302, -13, 26, -13, 28, -16, 27, -16, 25, -16, 23, -16, 18},
		{3101, 3161, -132, 252, -9, 19, -9, 20, -8, 21, -9, 19, -7, 20, -6, 17},
		{3101, 3161, -201, 188, -3, 9, -2, 9, -1, 8, 0, 8, 2, 7, 3, 7},
		{3101, 3161, -262, 120, 4, -1, 5, -4, 7, -2, 9, -4, 11, -5, 12, -6},
		{3101, 3161, -313, 50, 10, -10, 14, -11, 14, -11, 18, -11, 19, -11, 21, -10},
		{3101, 3161, -354, -18, 17, -17, 21, -15, 22, -13, 26, -12, 27, -9, 25, -8},
		{3101, 3161, -390, -100, 25, -18, 28, -14, 31, -10, 33, -5, 33, -2, 32, 0},
		{3101, 3161, -407, -173, 28, -15, 34, -7, 36, -1, 38, 4, 37, 7, 33, 11},
		{3101, 3161, -407, -235, 29, -7, 36, 1, 39, 10, 38, 13, 37, 17, 33, 18},
		{3101, 3161, -390, -284, 27, 2, 35, 12, 36, 18, 36, 21, 36, 24, 31, 22},
		{3101, 3161, -372, -307, 25, 8, 31, 17, 34, 23, 35, 25, 32, 26, 30, 24},
		{3101, 3161, -348, -325, 21, 14, 28, 21, 30, 28, 31, 26, 29, 29, 28, 24},
		{3101, 3161, -318, -338, 16, 19, 23, 26, 26, 29, 26, 30, 27, 27, 25, 27},
		{3101, 3161, -284, -345, 12, 23, 17, 28, 22, 31, 21, 31, 23, 27, 20, 27},
		{3101, 3161, -245, -348, 7, 27, 13, 31, 14, 30, 18, 31, 18, 28, 16, 25},
		{3101, 3161, -201, -345, 2, 30, 7, 30, 9, 31, 13, 29, 12, 27, 14, 25},
		{3101, 3161, -154, -337, -2, 31, 2, 29, 5, 31, 7, 27, 7, 26, 10, 23},
		{3101, 3161, -103, -323, -6, 29, -2, 29, 1, 28, 1, 26, 4, 23, 4, 22},
		{3101, 3161, -41, -302, -8, 28, -5, 26, -5, 25, -2, 23, -1, 21, 0, 18},
		{3101, 3161, 24, -274, -9, 25, -8, 21, -6, 22, -5, 20, -5, 17, -3, 16},
		{3101, 3161, 90, -239, -8, 18, -8, 18, -8, 17, -5, 15, -7, 15, -5, 13},
		{3101, 3161, 156, -200, -7, 13, -6, 12, -6, 12, -6, 11, -6, 10, -7, 11},
		{3101, 3161, 228, -148, -2, 4, -3, 5, -5, 5, -5, 6, -5, 5, -6, 5},
	},
	{ // value 5
		{3101, 3161, 250, -76, 2, -5, 0, -2, 0, -2, -3, -2, -3, 0, -4, -2},
		{3101, 3161, 300, -24, 6, -10, 1, -9, 1, -10, -3, -7, -5, -7, -6, -6},
		{3101, 3161, 342, 31, 7, -16, 4, -16, -1, -16, -6, -16, -10, -13, -12, -13},
		{3101, 3161, 366, 73, 9, -20, 3, -21, -4, -22, -9, -20, -15, -21, -18, -18},
		{3101, 3161, 384, 114, 10, -22, 0, -25, -6, -28, -15, -27, -21, -27, -26, -24},
		{3101, 3161, 395, 155, 9, -24, -1, -29, -12, -33, -21, -32, -27, -34, -33, -30},
		{3101, 3161, 399, 194, 7, -25, -4, -31, -16, -36, -28, -39, -33, -40, -39, -35},
		{3101, 3161, 392, 241, 5, -22, -9, -32, -23, -39, -34, -46, -42, -45, -45, -44},
		{3101, 3161, 373, 282, 0, -17, -13, -29, -27, -40, -41, -48, -46, -50, -49, -48},
		{3101, 3161, 341, 315, -3, -10, -18, -23, -30, -36, -43, -46, -49, -52, -50, -51},
		{3101, 3161, 297, 338, -5, -2, -20, -13, -32, -28, -42, -39, -49, -49, -50, -51},
		{3101, 3161, 259, 348, -9, 5, -19, -5, -31, -20, -41, -31, -47, -42, -48, -48},
		{3101, 3161, 216, 351, -11, 12, -18, 3, -30, -9, -38, -22, -42, -34, -45, -40},
		{3101, 3161, 169, 348, -11, 17, -19, 11, -26, 0, -33, -10, -38, -21, -40, -32},
		{3101, 3161, 120, 338, -11, 20, -18, 18, -23, 10, -28, 0, -32, -8, -35, -18},
		{3101, 3161, 61, 318, -11, 22, -16, 23, -18, 16, -23, 13, -24, 5, -28, -2},
		{3101, 3161, 2, 289, -11, 23, -12, 22, -15, 21, -16, 18, -19, 16, -18, 10},
		{3101, 3161, -56, 254, -9, 18, -9, 21, -11, 19, -12, 19, -10, 18, -13, 16},
		{3101, 3161, -112, 212, -5, 14, -7, 14, -6, 14, -6, 16, -6, 13, -6, 14},
		{3101, 3161, -170, 159, -2, 6, -2, 6, -1, 7, -1, 6, 1, 5, 2, 5},
		{3101, 3161, -222, 102, 3, -2, 3, 0, 4, -4, 6, -1, 7, -4, 7, -3},
		{3101, 3161, -266, 43, 8, -7, 8, -8, 11, -8, 11, -7, 12, -9, 15, -7},
		{3101, 3161, -301, -14, 12, -13, 14, -10, 16, -11, 17, -9, 19, -7, 18, -8},
		{3101, 3161, -331, -83, 16, -14, 20, -11, 22, -8, 22, -6, 25, -3, 23, -1},
		{3101, 3161, -347, -145, 21, -12, 22, -7, 26, -2, 27, 1, 26, 3, 27, 5},
		{3101, 3161, -347, -198, 21, -7, 25, 0, 26, 5, 28, 7, 28, 11, 26, 11},
		{3101, 3161, -332, -241, 19, 1, 23, 7, 26, 11, 27, 14, 25, 16, 26, 16},
		{3101, 3161, -316, -261, 17, 6, 20, 10, 25, 15, 24, 17, 25, 19, 23, 17},
		{3101, 3161, -296, -276, 15, 9, 18, 14, 21, 18, 22, 20, 23, 20, 21, 19},
		{3101, 3161, -270, -287, 10, 12, 16, 19, 18, 19, 18, 21, 20, 21, 19, 20},
		{3101, 3161, -241, -294, 8, 16, 11, 20, 14, 22, 16, 21, 16, 22, 16, 20},
		{3101, 3161, -208, -296, 5, 19, 8, 21, 9, 22, 13, 22, 12, 22, 12, 19},
		{3101, 3161, -170, -294, 0, 21, 5, 22, 6, 22, 7, 22, 10, 20, 8, 20},
		{3101, 3161, -130, -287, -2, 21, 1, 23, 2, 21, 4, 20, 6, 21, 5, 17},
		{3101, 3161, -87, -276, -4, 22, -3, 20, 0, 21, 1, 19, 2, 19, 2, 16},
		{3101, 3161, -34, -257, -6, 19, -5, 20, -2, 18, -4, 17, -1, 17, 0, 14},
		{3101, 3161, 21, -233, -7, 17, -5, 16, -5, 16, -5, 15, -3, 14, -4, 12},
		{3101, 3161, 77, -204, -7, 14, -4, 12, -7, 13, -4, 12, -5, 10, -4, 11},
		{3101, 3161, 132, -170, -4, 9, -5, 9, -4, 9, -5, 8, -4, 7, -4, 8},
		{3101, 3161, 193, -125, -1, 2, -2, 3, -3, 5, -4, 3, -3, 4, -4, 3},
	},
	{ // value 6
		{3101, 3161, 217, -66, 2, -4, 1, -1, -1, -2, -1, -2, -2, -1},
		{3101, 3161, 261, -20, 4, -8, 2, -7, 1, -7, -1, -7, -3, -5},
		{3101, 3161, 297, 28, 6, -12, 3, -13, 1, -12, -3, -11, -5, -12},
		{3101, 3161, 318, 65, 7, -16, 4, -15, -2, -16, -4, -17, -9, -15},
		{3101, 3161, 333, 101, 9, -17, 1, -19, -2, -20, -8, -21, -14, -20},
		{3101, 3161, 343, 136, 8, -18, 0, -21, -5, -23, -12, -25, -18, -26},
		{3101, 3161, 346, 170, 7, -18, -1, -23, -9, -25, -16, -30, -23, -29},
		{3101, 3161, 341, 211, 4, -16, -4, -23, -13, -27, -21, -32, -29, -35},
		{3101, 3161, 324, 246, 2, -12, -8, -19, -16, -28, -26, -33, -33, -37},
		{3101, 3161, 296, 274, 0, -6, -11, -15, -19, -23, -28, -32, -35, -36},
		{3101, 3161, 259, 293, -4, 1, -11, -8, -22, -16, -27, -27, -34, -32},
		{3101, 3161, 225, 302, -5, 5, -12, -2, -21, -10, -27, -19, -33, -28},
		{3101, 3161, 188, 304, -7, 11, -12, 4, -20, -4, -25, -12, -30, -19},
		{3101, 3161, 148, 301, -8, 14, -13, 10, -18, 3, -22, -3, -26, -11},
		{3101, 3161, 105, 292, -8, 17, -12, 14, -16, 9, -20, 5, -22, -2},
		{3101, 3161, 54, 275, -9, 17, -10, 18, -14, 13, -15, 13, -17, 7},
		{3101, 3161, 2, 250, -7, 18, -10, 16, -10, 16, -12, 16, -13, 13},
		{3101, 3161, -48, 220, -7, 13, -7, 16, -8, 15, -8, 14, -8, 15},
		{3101, 3161, -97, 184, -4, 10, -5, 10, -4, 12, -6, 11, -4, 10},
		{3101, 3161, -148, 138, -1, 4, -2, 6, -1, 4, 0, 4, -1, 5},
		{3101, 3161, -193, 89, 2, -2, 2, 0, 3, -2, 4, -1, 4, -3},
		{3101, 3161, -232, 38, 6, -5, 7, -7, 6, -5, 9, -6, 9, -7},
		{3101, 3161, -262, -12, 8, -9, 11, -8, 11, -9, 13, -7, 13, -6},
		{3101, 3161, -289, -72, 12, -10, 15, -9, 15, -7, 18, -5, 17, -4},
		{3101, 3161, -302, -126, 14, -8, 17, -7, 19, -3, 19, -1, 22, 2},
		{3101, 3161, -303, -172, 16, -5, 17, -2, 21, 2, 20, 5, 21, 7},
		{3101, 3161, -290, -209, 15, -1, 16, 5, 19, 7, 19, 10, 21, 11},
		{3101, 3161, -276, -227, 13, 4, 14, 6, 19, 11, 17, 12, 20, 13},
		{3101, 3161, -258, -240, 11, 5, 12, 11, 16, 13, 17, 13, 17, 16},
		{3101, 3161, -236, -250, 8, 8, 11, 14, 13, 14, 14, 15, 15, 17},
		{3101, 3161, -210, -256, 6, 11, 7, 15, 11, 16, 11, 16, 11, 17},
		{3101, 3161, -181, -258, 4, 13, 4, 16, 8, 17, 8, 17, 9, 16},
		{3101, 3161, -148, -256, 0, 14, 3, 17, 4, 17, 5, 17, 7, 16},
		{3101, 3161, -113, -251, -2, 17, 1, 15, 1, 18, 2, 15, 4, 16},
		{3101, 3161, -75, -241, -4, 16, -2, 16, -1, 16, 1, 14, 0, 16},
		{3101, 3161, -29, -225, -5, 15, -4, 15, -2, 14, -3, 13, -1, 14},
		{3101, 3161, 18, -204, -4, 13, -5, 13, -4, 12, -3, 12, -4, 10},
		{3101, 3161, 67, -178, -4, 10, -5, 10, -4, 10, -4, 8, -4, 10},
		{3101, 3161, 115, -148, -3, 6, -3, 8, -4, 5, -4, 8, -2, 5},
		{3101, 3161, 168, -109, -1, 1, -1, 4, -2, 2, -3, 2, -2, 4},
	},
	{ // value 7
		{3101, 3161, 192, -59, 3, -2, -1, -2, 1, -1, -1, -2},
		{3101, 3161, 231, -17, 3, -7, 3, -6, 1, -5, -1, -5},
		{3101, 3161, 263, 26, 5, -11, 3, -9, 1, -9, 0, -10},
		{3101, 3161, 281, 58, 7, -12, 3, -12, 0, -12, -2, -14},
		{3101, 3161, 295, 90, 7, -13, 3, -14, -1, -16, -5, -16},
		{3101, 3161, 304, 122, 6, -15, 2, -15, -2, -18, -8, -20},
		{3101, 3161, 307, 151, 5, -13, 2, -17, -6, -20, -10, -21},
		{3101, 3161, 302, 188, 4, -13, -1, -15, -9, -21, -13, -25},
		{3101, 3161, 287, 219, 2, -9, -3, -14, -12, -20, -17, -23},
		{3101, 3161, 262, 243, 1, -4, -6, -10, -13, -16, -20, -22},
		{3101, 3161, 229, 260, -1, 1, -8, -4, -14, -11, -20, -18},
		{3101, 3161, 200, 267, -3, 5, -10, 1, -13, -7, -19, -12},
		{3101, 3161, 167, 269, -5, 9, -9, 4, -13, 0, -18, -6},
		{3101, 3161, 131, 266, -5, 12, -10, 8, -12, 5, -16, -1},
		{3101, 3161, 93, 258, -5, 14, -10, 11, -10, 9, -15, 5},
		{3101, 3161, 48, 243, -6, 14, -8, 13, -11, 12, -10, 11},
		{3101, 3161, 2, 221, -5, 14, -8, 13, -7, 13, -10, 12},
		{3101, 3161, -43, 194, -4, 11, -6, 12, -6, 12, -7, 11},
		{3101, 3161, -86, 163, -3, 7, -3, 9, -5, 8, -3, 9},
		{3101, 3161, -131, 122, -1, 4, -2, 3, 0, 4, -1, 4},
		{3101, 3161, -171, 79, 1, -1, 1, -1, 3, -1, 3, -1},
		{3101, 3161, -206, 34, 5, -4, 4, -5, 6, -5, 6, -4},
		{3101, 3161, -233, -10, 7, -7, 7, -8, 10, -5, 8, -7},
		{3101, 3161, -257, -63, 10, -8, 10, -8, 13, -6, 12, -4},
		{3101, 3161, -269, -111, 11, -7, 14, -6, 13, -3, 16, -1},
		{3101, 3161, -269, -152, 12, -5, 13, -2, 15, 2, 17, 2},
		{3101, 3161, -257, -185, 10, -2, 12, 4, 16, 4, 14, 8},
		{3101, 3161, -245, -201, 9, 2, 12, 4, 13, 9, 14, 8},
		{3101, 3161, -229, -213, 8, 3, 9, 9, 12, 8, 13, 12},
		{3101, 3161, -210, -222, 7, 6, 8, 10, 9, 10, 11, 13},
		{3101, 3161, -186, -228, 3, 9, 7, 11, 7, 12, 8, 13},
		{3101, 3161, -160, -230, 1, 11, 5, 12, 4, 13, 7, 13},
		{3101, 3161, -132, -228, 1, 11, 2, 14, 2, 12, 4, 14},
		{3101, 3161, -100, -223, -2, 12, 1, 13, 0, 14, 1, 12},
		{3101, 3161, -67, -214, -2, 11, -2, 14, -2, 12, 1, 12},
		{3101, 3161, -26, -200, -3, 11, -4, 13, -2, 10, -1, 11},
		{3101, 3161, 17, -181, -5, 9, -2, 11, -5, 10, -2, 9},
		{3101, 3161, 60, -158, -4, 7, -3, 8, -4, 8, -3, 8},
		{3101, 3161, 102, -132, -2, 6, -3, 4, -2, 7, -4, 4},
		{3101, 3161, 149, -97, 0, 1, -2, 3, -1, 1, -2, 3},
	},
	{ // value 8
		{3101, 3161, 173, -53, 2, -1, 0, -2, 0, -2},
		{3101, 3161, 208, -15, 2, -6, 3, -4, 1, -5},
		{3101, 3161, 236, 23, 5, -7, 2, -9, 2, -7},
		{3101, 3161, 253, 53, 5, -10, 4, -10, 0, -9},
		{3101, 3161, 265, 82, 6, -11, 3, -11, 0, -13},
		{3101, 3161, 273, 110, 6, -11, 2, -13, -2, -14},
		{3101, 3161, 276, 137, 5, -11, 1, -13, -3, -16},
		{3101, 3161, 271, 169, 5, -9, -1, -12, -5, -16, -10, -19},
		{3101, 3161, 258, 197, 2, -6, -1, -11, -8, -15, -12, -17},
		{3101, 3161, 236, 219, 1, -3, -4, -7, -9, -12, -14, -15},
		{3101, 3161, 206, 234, 0, 1, -6, -2, -10, -8, -13, -12},
		{3101, 3161, 180, 240, -2, 5, -7, 0, -9, -3, -15, -7},
		{3101, 3161, 150, 242, -3, 7, -6, 4, -11, 2, -12, -4},
		{3101, 3161, 118, 239, -4, 10, -6, 7, -11, 4, -11, 2},
		{3101, 3161, 84, 232, -4, 11, -7, 9, -9, 8},
		{3101, 3161, 43, 218, -4, 11, -7, 11, -7, 11},
		{3101, 3161, 2, 199, -4, 10, -6, 11, -6, 10},
		{3101, 3161, -38, 174, -4, 9, -5, 10, -4, 9},
		{3101, 3161, -77, 146, -2, 6, -4, 7, -3, 7},
		{3101, 3161, -118, 110, -1, 2, 0, 4, -2, 3},
		{3101, 3161, -154, 71, 1, -1, 1, 0, 2, -1},
		{3101, 3161, -185, 31, 3, -4, 4, -3, 4, -4},
		{3101, 3161, -210, -9, 6, -5, 5, -7, 7, -4},
		{3101, 3161, -232, -56, 8, -8, 9, -5, 9, -5},
		{3101, 3161, -243, -99, 10, -7, 10, -4, 11, -4},
		{3101, 3161, -243, -137, 10, -3, 10, -3},
		{3101, 3161, -232, -167, 8, 0, 10, 1},
		{3101, 3161, -221, -181, 7, 1, 10, 4},
		{3101, 3161, -207, -192, 7, 3, 8, 5},
		{3101, 3161, -189, -200, 5, 4, 6, 9},
		{3101, 3161, -168, -205, 3, 6, 5, 9},
		{3101, 3161, -144, -207, 1, 8, 3, 10},
		{3101, 3161, -118, -206, 0, 10, 0, 9},
		{3101, 3161, -90, -201, -1, 9, -1, 12},
		{3101, 3161, -60, -193, -2, 9, -2, 11, -1, 9},
		{3101, 3161, -23, -181, -3, 10, -3, 9, -1, 10},
		{3101, 3161, 15, -164, -3, 9, -3, 8, -3, 7},
		{3101, 3161, 54, -143, -3, 6, -3, 7, -2, 7},
		{3101, 3161, 92, -119, -2, 5, -2, 3, -2, 5},
		{3101, 3161, 134, -87, 0, 0, -1, 3, -1, 1},
	},
	{ // value 9
		{3101, 3161, 157, -48, 2, -1, 0, -2},
		{3101, 3161, 188, -14, 4, -4, 1, -4},
		{3101, 3161, 214, 22, 5, -7, 2, -7},
		{3101, 3161, 230, 48, 4, -7, 3, -9},
		{3101, 3161, 241, 75, 5, -9, 2, -9},
		{3101, 3161, 248, 100, 5, -8, 2, -11},
		{3101, 3161, 250, 125, 5, -9, 2, -11},
		{3101, 3161, 246, 154, 5, -7, -1, -10, -2, -12},
		{3101, 3161, 234, 179, 3, -4, -1, -9, -5, -11},
		{3101, 3161, 214, 199, 2, -2, -3, -5, -6, -9},
		{3101, 3161, 188, 213, -1, 0, -4, 0, -6, -6},
		{3101, 3161, 164, 218, -2, 4, -5, 1, -7, -1},
		{3101, 3161, 137, 220, -3, 5, -5, 5, -7, 1},
		{3101, 3161, 108, 217, -4, 8, -5, 6, -7, 5},
		{3101, 3161, 77, 210, -4, 10, -5, 7},
		{3101, 3161, 40, 198, -4, 9, -6, 9},
		{3101, 3161, 2, 180, -3, 9, -5, 9},
		{3101, 3161, -35, 158, -2, 7, -4, 8},
		{3101, 3161, -70, 132, -2, 6, -2, 5},
		{3101, 3161, -107, 100, -1, 2, -1, 2},
		{3101, 3161, -140, 65, 0, -2, 2, 1},
		{3101, 3161, -169, 28, 4, -2, 2, -4},
		{3101, 3161, -191, -8, 4, -4, 6, -6},
		{3101, 3161, -211, -51, 7, -6, 6, -4},
		{3101, 3161, -221, -90, 8, -6, 7, -3},
		{3101, 3161, -221, -124, 8, -4},
		{3101, 3161, -211, -151, 6, -2},
		{3101, 3161, -201, -164, 6, 0},
		{3101, 3161, -188, -175, 5, 3},
		{3101, 3161, -172, -182, 4, 3},
		{3101, 3161, -153, -187, 3, 6},
		{3101, 3161, -131, -189, 1, 7},
		{3101, 3161, -108, -187, 1, 7},
		{3101, 3161, -82, -183, -1, 7},
		{3101, 3161, -54, -176, -3, 8, 0, 8},
		{3101, 3161, -21, -164, -2, 7, -2, 8},
		{3101, 3161, 14, -149, -3, 6, -2, 8},
		{3101, 3161, 49, -130, -2, 5, -3, 5},
		{3101, 3161, 84, -108, -2, 3, -2, 4},
		{3101, 3161, 122, -79, 0, 0, -1, 2},
	},
	{ // value 10
		{3101, 3161, 144, -44},
		{3101, 3161, 172, -12},
		{3101, 3161, 196, 20},
		{3101, 3161, 210, 45},
		{3101, 3161, 220, 69},
		{3101, 3161, 227, 92},
		{3101, 3161, 229, 115},
		{3101, 3161, 225, 141},
		{3101, 3161, 214, 164},
		{3101, 3161, 196, 182},
		{3101, 3161, 172, 195},
		{3101, 3161, 150, 200},
		{3101, 3161, 125, 201},
		{3101, 3161, 99, 198},
		{3101, 3161, 70, 192},
		{3101, 3161, 36, 181},
		{3101, 3161, 2, 165},
		{3101, 3161, -32, 144},
		{3101, 3161, -64, 121},
		{3101, 3161, -98, 91},
		{3101, 3161, -129, 59},
		{3101, 3161, -154, 26},
		{3101, 3161, -175, -7},
		{3101, 3161, -193, -46},
		{3101, 3161, -202, -82},
		{3101, 3161, -203, -113},
		{3101, 3161, -194, -139},
		{3101, 3161, -184, -151},
		{3101, 3161, -172, -160},
		{3101, 3161, -157, -167},
		{3101, 3161, -140, -171},
		{3101, 3161, -120, -173},
		{3101, 3161, -99, -172},
		{3101, 3161, -75, -168},
		{3101, 3161, -50, -162},
		{3101, 3161, -19, -151},
		{3101, 3161, 13, -137},
		{3101, 3161, 45, -119},
		{3101, 3161, 77, -99},
		{3101, 3161, 112, -73},
	},
}
