package value

import "strconv"

type Scalar float64

func (s Scalar) Plus(o Scalar) Scalar {
	return s + o
}

func (s Scalar) Minus(o Scalar) Scalar {
	return s - o
}

func (s *Scalar) Add(o Scalar) {
	*s += o
}

func (s *Scalar) Subtract(o Scalar) {
	*s -= o
}

func (s Scalar) Equal(o Scalar) bool {
	return s == o
}

func (s Scalar) LessEqual(o Scalar) bool {
	return s <= o
}

func (s Scalar) String() string {
	return strconv.FormatFloat(float64(s), 'g', -1, 64)
}
