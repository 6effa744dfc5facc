package steam

// Saturated water properties by pressure. Columns: pressure [kPa],
// saturation temperature [K], vf/vg [m3/kg], hf/hfg [kJ/kg],
// sf/sfg [kJ/kg.K]. Rows ascend in pressure.
type satRow struct {
	p   float64
	t   float64
	vf  float64
	vg  float64
	hf  float64
	hfg float64
	sf  float64
	sfg float64
}

var saturation = []satRow{
	{1.0, 280.12, 0.001000, 129.19, 29.30, 2484.4, 0.1059, 8.8690},
	{2.0, 290.65, 0.001001, 66.990, 73.43, 2459.5, 0.2606, 8.4621},
	{3.0, 297.23, 0.001003, 45.654, 101.03, 2444.1, 0.3543, 8.2222},
	{5.0, 306.02, 0.001005, 28.185, 137.75, 2423.0, 0.4762, 7.9176},
	{7.5, 313.44, 0.001008, 19.233, 168.75, 2405.3, 0.5763, 7.6738},
	{10, 318.96, 0.001010, 14.670, 191.81, 2392.1, 0.6492, 7.4996},
	{15, 327.12, 0.001014, 10.020, 225.94, 2372.3, 0.7549, 7.2522},
	{20, 333.21, 0.001017, 7.6481, 251.42, 2357.5, 0.8320, 7.0752},
	{30, 342.24, 0.001022, 5.2287, 289.27, 2335.3, 0.9441, 6.8234},
	{50, 354.47, 0.001030, 3.2403, 340.54, 2304.7, 1.0912, 6.5019},
	{75, 364.91, 0.001037, 2.2172, 384.44, 2278.0, 1.2132, 6.2426},
	{100, 372.76, 0.001043, 1.6941, 417.51, 2257.5, 1.3028, 6.0562},
	{200, 393.36, 0.001061, 0.88578, 504.71, 2201.6, 1.5302, 5.5968},
	{500, 424.98, 0.001093, 0.37483, 640.09, 2108.0, 1.8604, 4.9603},
	{1000, 453.03, 0.001127, 0.19437, 762.51, 2014.6, 2.1381, 4.4469},
	{2000, 485.53, 0.001177, 0.099587, 908.47, 1889.8, 2.4467, 3.8923},
	{5000, 537.09, 0.001286, 0.039448, 1154.5, 1639.7, 2.9210, 3.0530},
	{10000, 584.15, 0.001452, 0.018028, 1407.8, 1317.6, 3.3603, 2.2555},
	{15000, 615.31, 0.001658, 0.010341, 1610.3, 985.5, 3.6848, 1.6017},
	{20000, 638.90, 0.002038, 0.005862, 1827.2, 585.5, 4.0146, 0.9164},
}

// Superheated steam grid. Per pressure column: temperature [K],
// h [kJ/kg], s [kJ/kg.K], v [m3/kg]. Columns ascend in pressure,
// rows ascend in temperature.
type shRow struct {
	t float64
	h float64
	s float64
	v float64
}

type shColumn struct {
	p    float64
	rows []shRow
}

var superheated = []shColumn{
	{10, []shRow{
		{323.15, 2592.6, 8.1749, 14.867},
		{373.15, 2687.5, 8.4489, 17.196},
		{423.15, 2783.0, 8.6893, 19.513},
		{473.15, 2879.5, 8.9038, 21.825},
		{573.15, 3076.5, 9.2813, 26.445},
		{673.15, 3279.6, 9.6077, 31.063},
		{773.15, 3489.1, 9.8978, 35.679},
		{873.15, 3705.4, 10.1608, 40.295},
	}},
	{100, []shRow{
		{373.15, 2675.8, 7.3611, 1.6959},
		{423.15, 2776.6, 7.6148, 1.9367},
		{473.15, 2875.5, 7.8356, 2.1724},
		{573.15, 3074.5, 8.2172, 2.6388},
		{673.15, 3278.2, 8.5452, 3.1027},
		{773.15, 3488.1, 8.8362, 3.5655},
		{873.15, 3704.8, 9.0999, 4.0279},
	}},
	{500, []shRow{
		{473.15, 2855.8, 7.0610, 0.42503},
		{523.15, 2961.0, 7.2725, 0.47443},
		{573.15, 3064.6, 7.4614, 0.52261},
		{673.15, 3272.4, 7.7956, 0.61731},
		{773.15, 3484.5, 8.0893, 0.71095},
		{873.15, 3702.5, 8.3544, 0.80409},
	}},
	{1000, []shRow{
		{473.15, 2828.3, 6.6956, 0.20602},
		{523.15, 2943.1, 6.9265, 0.23275},
		{573.15, 3051.6, 7.1246, 0.25799},
		{673.15, 3264.5, 7.4670, 0.30661},
		{773.15, 3479.1, 7.7642, 0.35411},
		{873.15, 3698.6, 8.0310, 0.40111},
	}},
	{2000, []shRow{
		{523.15, 2903.3, 6.5475, 0.11150},
		{573.15, 3024.2, 6.7684, 0.12551},
		{623.15, 3137.7, 6.9583, 0.13860},
		{673.15, 3248.4, 7.1292, 0.15122},
		{773.15, 3468.3, 7.4337, 0.17568},
		{873.15, 3690.7, 7.7043, 0.19961},
	}},
	{4000, []shRow{
		{573.15, 2961.7, 6.3639, 0.058870},
		{623.15, 3093.3, 6.5843, 0.066470},
		{673.15, 3214.5, 6.7714, 0.073430},
		{723.15, 3331.2, 6.9386, 0.080040},
		{773.15, 3446.0, 7.0922, 0.086440},
		{873.15, 3674.9, 7.3706, 0.098860},
	}},
	{6000, []shRow{
		{623.15, 3043.9, 6.3357, 0.042250},
		{673.15, 3178.3, 6.5432, 0.047420},
		{723.15, 3302.9, 6.7219, 0.052170},
		{773.15, 3423.1, 6.8826, 0.056670},
		{873.15, 3658.7, 7.1693, 0.065270},
	}},
	{8000, []shRow{
		{623.15, 2988.1, 6.1321, 0.029950},
		{673.15, 3139.4, 6.3658, 0.034340},
		{723.15, 3272.3, 6.5579, 0.038170},
		{773.15, 3399.5, 6.7266, 0.041750},
		{873.15, 3642.4, 7.0221, 0.048450},
	}},
	{10000, []shRow{
		{673.15, 3097.5, 6.2141, 0.026440},
		{723.15, 3242.4, 6.4219, 0.029750},
		{773.15, 3375.1, 6.5995, 0.032790},
		{823.15, 3502.0, 6.7585, 0.035640},
		{873.15, 3625.8, 6.9045, 0.038370},
	}},
	{15000, []shRow{
		{723.15, 3157.9, 6.1434, 0.018450},
		{773.15, 3310.8, 6.3480, 0.020800},
		{823.15, 3450.4, 6.5230, 0.022930},
		{873.15, 3583.1, 6.6796, 0.024910},
	}},
}
