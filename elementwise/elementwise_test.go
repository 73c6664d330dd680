package elementwise

// shifted holds (x_i - r_i)² with its elementwise derivatives
type shifted struct {
	r []float64
}

func (s shifted) F(dst, x []float64) {
	for i, v := range x {
		d := v - s.r[i]
		dst[i] = d * d
	}
}

func (s shifted) J(dst, x []float64) {
	for i, v := range x {
		dst[i] = 2 * (v - s.r[i])
	}
}

func (s shifted) H(dst, x []float64) {
	for i := range x {
		dst[i] = 2
	}
}

// squares holds x_i² - c_i, with roots at √c_i
type squares struct {
	c []float64
}

func (s squares) F(dst, x []float64) {
	for i, v := range x {
		dst[i] = v*v - s.c[i]
	}
}

func (s squares) J(dst, x []float64) {
	for i, v := range x {
		dst[i] = 2 * v
	}
}

func zeros(dst, x []float64) {
	for i := range dst {
		dst[i] = 0
	}
}
