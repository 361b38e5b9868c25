package colorimetry

// cmfTable holds colour matching functions sampled every 5 nm: wavelength,
// xbar, ybar and zbar per row.
type cmfTable [][4]float64

// at linearly interpolates the table at wl. Outside the tabulated range the
// functions are zero.
func (t cmfTable) at(wl float64) Vec3 {
	first, last := t[0][0], t[len(t)-1][0]
	if wl < first || wl > last {
		return Vec3{}
	}
	step := t[1][0] - t[0][0]
	p := (wl - first) / step
	i := int(p)
	if i >= len(t)-1 {
		r := t[len(t)-1]
		return Vec3{r[1], r[2], r[3]}
	}
	f := p - float64(i)
	a, b := t[i], t[i+1]
	return Vec3{
		a[1] + f*(b[1]-a[1]),
		a[2] + f*(b[2]-a[2]),
		a[3] + f*(b[3]-a[3]),
	}
}

// CIE 1931 2 degree standard observer [CIE 015:2018, table 1].
var cie1931 = cmfTable{
	{360, 0.0001299, 0.000003917, 0.0006061},
	{365, 0.0002321, 0.000006965, 0.001086},
	{370, 0.0004149, 0.00001239, 0.001946},
	{375, 0.0007416, 0.00002202, 0.003486},
	{380, 0.001368, 0.000039, 0.00645},
	{385, 0.002236, 0.000064, 0.01055},
	{390, 0.004243, 0.00012, 0.02005},
	{395, 0.00765, 0.000217, 0.03621},
	{400, 0.01431, 0.000396, 0.06785},
	{405, 0.02319, 0.00064, 0.1102},
	{410, 0.04351, 0.00121, 0.2074},
	{415, 0.07763, 0.00218, 0.3713},
	{420, 0.13438, 0.004, 0.6456},
	{425, 0.21477, 0.0073, 1.03905},
	{430, 0.2839, 0.0116, 1.3856},
	{435, 0.3285, 0.01684, 1.62296},
	{440, 0.34828, 0.023, 1.74706},
	{445, 0.34806, 0.0298, 1.7826},
	{450, 0.3362, 0.038, 1.77211},
	{455, 0.3187, 0.048, 1.7441},
	{460, 0.2908, 0.06, 1.6692},
	{465, 0.2511, 0.0739, 1.5281},
	{470, 0.19536, 0.09098, 1.28764},
	{475, 0.1421, 0.1126, 1.0419},
	{480, 0.09564, 0.13902, 0.81295},
	{485, 0.05795, 0.1693, 0.6162},
	{490, 0.03201, 0.20802, 0.46518},
	{495, 0.0147, 0.2586, 0.3533},
	{500, 0.0049, 0.323, 0.272},
	{505, 0.0024, 0.4073, 0.2123},
	{510, 0.0093, 0.503, 0.1582},
	{515, 0.0291, 0.6082, 0.1117},
	{520, 0.06327, 0.71, 0.07825},
	{525, 0.1096, 0.7932, 0.05725},
	{530, 0.1655, 0.862, 0.04216},
	{535, 0.22575, 0.91485, 0.02984},
	{540, 0.2904, 0.954, 0.0203},
	{545, 0.3597, 0.9803, 0.0134},
	{550, 0.43345, 0.99495, 0.00875},
	{555, 0.51205, 1.0, 0.00575},
	{560, 0.5945, 0.995, 0.0039},
	{565, 0.6784, 0.9786, 0.00275},
	{570, 0.7621, 0.952, 0.0021},
	{575, 0.8425, 0.9154, 0.0018},
	{580, 0.9163, 0.87, 0.00165},
	{585, 0.9786, 0.8163, 0.0014},
	{590, 1.0263, 0.757, 0.0011},
	{595, 1.0567, 0.6949, 0.001},
	{600, 1.0622, 0.631, 0.0008},
	{605, 1.0456, 0.5668, 0.0006},
	{610, 1.0026, 0.503, 0.00034},
	{615, 0.9384, 0.4412, 0.00024},
	{620, 0.85445, 0.381, 0.00019},
	{625, 0.7514, 0.321, 0.0001},
	{630, 0.6424, 0.265, 0.00005},
	{635, 0.5419, 0.217, 0.00003},
	{640, 0.4479, 0.175, 0.00002},
	{645, 0.3608, 0.1382, 0.00001},
	{650, 0.2835, 0.107, 0},
	{655, 0.2187, 0.0816, 0},
	{660, 0.1649, 0.061, 0},
	{665, 0.1212, 0.04458, 0},
	{670, 0.0874, 0.032, 0},
	{675, 0.0636, 0.0232, 0},
	{680, 0.04677, 0.017, 0},
	{685, 0.0329, 0.01192, 0},
	{690, 0.0227, 0.00821, 0},
	{695, 0.01584, 0.005723, 0},
	{700, 0.01135916, 0.004102, 0},
	{705, 0.008110916, 0.002929, 0},
	{710, 0.005790346, 0.002091, 0},
	{715, 0.004109457, 0.001484, 0},
	{720, 0.002899327, 0.001047, 0},
	{725, 0.00204919, 0.00074, 0},
	{730, 0.001439971, 0.00052, 0},
	{735, 0.0009999493, 0.0003611, 0},
	{740, 0.0006900786, 0.0002492, 0},
	{745, 0.0004760213, 0.0001719, 0},
	{750, 0.0003323011, 0.00012, 0},
	{755, 0.0002348261, 0.0000848, 0},
	{760, 0.0001661505, 0.00006, 0},
	{765, 0.000117413, 0.0000424, 0},
	{770, 0.00008307527, 0.00003, 0},
	{775, 0.00005870652, 0.0000212, 0},
	{780, 0.00004150994, 0.00001499, 0},
	{785, 0.00002935326, 0.0000106, 0},
	{790, 0.00002067383, 0.0000074657, 0},
	{795, 0.00001455977, 0.0000052578, 0},
	{800, 0.00001025398, 0.0000037029, 0},
	{805, 0.000007221456, 0.0000026078, 0},
	{810, 0.000005085868, 0.0000018366, 0},
	{815, 0.000003581652, 0.0000012934, 0},
	{820, 0.000002522525, 0.00000091093, 0},
	{825, 0.000001776509, 0.00000064153, 0},
	{830, 0.000001251141, 0.00000045181, 0},
}

// CIE 1964 10 degree standard observer [CIE 015:2018, table 2].
var cie1964 = cmfTable{
	{360, 0.0000001222, 0.000000013398, 0.000000535027},
	{365, 0.00000091927, 0.00000010065, 0.0000040283},
	{370, 0.0000059586, 0.00000065111, 0.000026143},
	{375, 0.000033266, 0.000003625, 0.00014622},
	{380, 0.000159952, 0.000017364, 0.000704776},
	{385, 0.00066244, 0.00007156, 0.0029278},
	{390, 0.0023616, 0.0002534, 0.0104822},
	{395, 0.0072423, 0.0007685, 0.0323478},
	{400, 0.0191097, 0.0020044, 0.0860109},
	{405, 0.0434, 0.004509, 0.19712},
	{410, 0.084736, 0.008756, 0.389366},
	{415, 0.140638, 0.014456, 0.65676},
	{420, 0.204492, 0.021391, 0.972542},
	{425, 0.264737, 0.029497, 1.2825},
	{430, 0.314679, 0.038676, 1.55348},
	{435, 0.357719, 0.049602, 1.7985},
	{440, 0.383734, 0.062077, 1.96728},
	{445, 0.386726, 0.074704, 2.0273},
	{450, 0.370702, 0.089456, 1.9948},
	{455, 0.342957, 0.106256, 1.9007},
	{460, 0.302273, 0.128201, 1.74537},
	{465, 0.254085, 0.152761, 1.5549},
	{470, 0.195618, 0.18519, 1.31756},
	{475, 0.132349, 0.21994, 1.0302},
	{480, 0.080507, 0.253589, 0.772125},
	{485, 0.041072, 0.297665, 0.57006},
	{490, 0.016172, 0.339133, 0.415254},
	{495, 0.005132, 0.395379, 0.302356},
	{500, 0.003816, 0.460777, 0.218502},
	{505, 0.015444, 0.53136, 0.159249},
	{510, 0.037465, 0.606741, 0.112044},
	{515, 0.071358, 0.68566, 0.082248},
	{520, 0.117749, 0.761757, 0.060709},
	{525, 0.172953, 0.82333, 0.04305},
	{530, 0.236491, 0.875211, 0.030451},
	{535, 0.304213, 0.92381, 0.020584},
	{540, 0.376772, 0.961988, 0.013676},
	{545, 0.451584, 0.9822, 0.007918},
	{550, 0.529826, 0.991761, 0.003988},
	{555, 0.616053, 0.99911, 0.001091},
	{560, 0.705224, 0.99734, 0},
	{565, 0.793832, 0.98238, 0},
	{570, 0.878655, 0.955552, 0},
	{575, 0.951162, 0.915175, 0},
	{580, 1.01416, 0.868934, 0},
	{585, 1.0743, 0.825623, 0},
	{590, 1.11852, 0.777405, 0},
	{595, 1.1343, 0.720353, 0},
	{600, 1.12399, 0.658341, 0},
	{605, 1.0891, 0.593878, 0},
	{610, 1.03048, 0.527963, 0},
	{615, 0.95074, 0.461834, 0},
	{620, 0.856297, 0.398057, 0},
	{625, 0.75493, 0.339554, 0},
	{630, 0.647467, 0.283493, 0},
	{635, 0.53511, 0.228254, 0},
	{640, 0.431567, 0.179828, 0},
	{645, 0.34369, 0.140211, 0},
	{650, 0.268329, 0.107633, 0},
	{655, 0.2043, 0.081187, 0},
	{660, 0.152568, 0.060281, 0},
	{665, 0.11221, 0.044096, 0},
	{670, 0.0812606, 0.0318004, 0},
	{675, 0.05793, 0.0226017, 0},
	{680, 0.0408508, 0.0159051, 0},
	{685, 0.028623, 0.0111303, 0},
	{690, 0.0199413, 0.0077488, 0},
	{695, 0.013842, 0.0053751, 0},
	{700, 0.00957688, 0.00371774, 0},
	{705, 0.0066052, 0.00256456, 0},
	{710, 0.00455263, 0.00176847, 0},
	{715, 0.0031447, 0.00122239, 0},
	{720, 0.00217496, 0.00084619, 0},
	{725, 0.0015057, 0.00058644, 0},
	{730, 0.00104476, 0.00040741, 0},
	{735, 0.00072745, 0.00028404, 0},
	{740, 0.000508258, 0.00019873, 0},
	{745, 0.00035638, 0.00013955, 0},
	{750, 0.000250969, 0.000098428, 0},
	{755, 0.00017773, 0.000069819, 0},
	{760, 0.00012639, 0.000049737, 0},
	{765, 0.00009015, 0.00003554, 0},
	{770, 0.0000645258, 0.0000255, 0},
	{775, 0.00004638, 0.000018338, 0},
	{780, 0.0000334117, 0.0000132169, 0},
	{785, 0.00002418, 0.0000095889, 0},
	{790, 0.000017579, 0.0000069861, 0},
	{795, 0.00001283, 0.0000051094, 0},
	{800, 0.00000940924, 0.00000375, 0},
	{805, 0.000006925, 0.0000027661, 0},
	{810, 0.00000511, 0.00000204, 0},
	{815, 0.000003785, 0.0000015154, 0},
	{820, 0.00000281, 0.0000011293, 0},
	{825, 0.000002094, 0.00000084416, 0},
	{830, 0.000001567, 0.00000063283, 0},
}
