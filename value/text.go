package value

type Text string

func (t Text) Equal(o Text) bool {
	return t == o
}

func (t Text) String() string {
	return string(t)
}
