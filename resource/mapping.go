package resource

// Mapping locates one resource inside a game's volume files.
type Mapping interface {
	Type() Type
	Number() Number

	Resource() (Resource, error)
}

// ViewMapping is a Mapping known to hold a view.
type ViewMapping struct{ Mapping }

func (vm ViewMapping) View() (View, error) {
	res, err := vm.Resource()
	if err != nil {
		return View{}, err
	}
	return NewView(res.Bytes())
}
