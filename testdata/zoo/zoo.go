package zoo

type Speaker interface {
	Speak() string
}

type creature struct{ name string }

func (c creature) Name() string { return c.name }

type Dog struct{ creature }

func (d Dog) Speak() string { return d.name + " barks" }

type Cat struct{ creature }

func (c Cat) Speak() string { return c.name + " meows" }

type Fish struct{ creature } // no Speak
