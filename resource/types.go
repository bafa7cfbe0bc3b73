package resource

// Type is the kind of a resource, as stored in the top five bits of a map
// entry.
type Type uint8

const (
	TypeView Type = iota
	TypePic
	TypeScript
	TypeText
	TypeSound
	TypeMemory
	TypeVocab
	TypeFont
	TypeCursor
	TypePatch
)

var typeNames = [...]string{
	TypeView:   "View",
	TypePic:    "Pic",
	TypeScript: "Script",
	TypeText:   "Text",
	TypeSound:  "Sound",
	TypeMemory: "Memory",
	TypeVocab:  "Vocab",
	TypeFont:   "Font",
	TypeCursor: "Cursor",
	TypePatch:  "Patch",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return "Type(" + typeNames[t] + ")"
	}
	return "Type(UNKNOWN)"
}
