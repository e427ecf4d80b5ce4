package empty

type Anything interface{}

type Box struct{}
