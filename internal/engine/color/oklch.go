package color

import "math"

// sRGB <-> OKLab conversion per Björn Ottosson's reference matrices.

func rgbToOKLCH(c rgb8) (l, chroma, hue float64) {
	lr := srgbToLinear(float64(c.R) / 255.0)
	lg := srgbToLinear(float64(c.G) / 255.0)
	lb := srgbToLinear(float64(c.B) / 255.0)

	L, a, b := linearRGBToOKLab(lr, lg, lb)

	chroma = math.Sqrt(a*a + b*b)
	hue = math.Atan2(b, a) * (180.0 / math.Pi)
	if hue < 0 {
		hue += 360.0
	}

	return L, chroma, hue
}

func oklchToRGB(l, chroma, hue float64) rgb8 {
	hRad := hue * (math.Pi / 180.0)
	a := chroma * math.Cos(hRad)
	b := chroma * math.Sin(hRad)

	lr, lg, lb := oklabToLinearRGB(l, a, b)

	return rgb8{
		R: uint8(math.Round(linearToSRGB(clamp01(lr)) * 255.0)),
		G: uint8(math.Round(linearToSRGB(clamp01(lg)) * 255.0)),
		B: uint8(math.Round(linearToSRGB(clamp01(lb)) * 255.0)),
	}
}

func srgbToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func linearToSRGB(v float64) float64 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1.0/2.4) - 0.055
}

func linearRGBToOKLab(r, g, b float64) (float64, float64, float64) {
	// M1: linear RGB -> LMS
	l := 0.4122214708*r + 0.5363325363*g + 0.0514459929*b
	m := 0.2119034982*r + 0.6806995451*g + 0.1073969566*b
	s := 0.0883024619*r + 0.2817188376*g + 0.6299787005*b

	lp := math.Cbrt(l)
	mp := math.Cbrt(m)
	sp := math.Cbrt(s)

	// M2: LMS' -> Lab
	L := 0.2104542553*lp + 0.7936177850*mp - 0.0040720468*sp
	A := 1.9779984951*lp - 2.4285922050*mp + 0.4505937099*sp
	B := 0.0259040371*lp + 0.7827717662*mp - 0.8086757660*sp

	return L, A, B
}

func oklabToLinearRGB(L, a, b float64) (float64, float64, float64) {
	lp := L + 0.3963377774*a + 0.2158037573*b
	mp := L - 0.1055613458*a - 0.0638541728*b
	sp := L - 0.0894841775*a - 1.2914855480*b

	l := lp * lp * lp
	m := mp * mp * mp
	s := sp * sp * sp

	r := +4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	g := -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	bl := -0.0041960863*l - 0.7034186147*m + 1.7076147010*s

	return r, g, bl
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
