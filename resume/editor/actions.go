package editor

import (
	"encoding/json"
	"errors"
	"fmt"

	"cv-builder/resume/model"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrOutOfRange    = errors.New("index out of range")
	ErrUnknownTarget = errors.New("unknown edit target")
	ErrBadValue      = errors.New("value has the wrong type")
)

// Action is one edit. A draft is the result of reducing its actions over
// the starting form.
type Action interface {
	Apply(f *model.Form) *model.Form
}

type SetFieldAction struct {
	Field Field  `json:"field"`
	Value string `json:"value"`
}

func (a SetFieldAction) Apply(f *model.Form) *model.Form {
	return SetField(f, a.Field, a.Value)
}

type SetItemAction struct {
	Collection Collection `json:"collection"`
	Index      int        `json:"index"`
	Attr       string     `json:"attr"`
	Value      any        `json:"value"`
}

func (a SetItemAction) Apply(f *model.Form) *model.Form {
	return SetItem(f, a.Collection, a.Index, a.Attr, a.Value)
}

type AddItemAction struct {
	Collection Collection `json:"collection"`
}

func (a AddItemAction) Apply(f *model.Form) *model.Form {
	return AddItem(f, a.Collection)
}

type RemoveItemAction struct {
	Collection Collection `json:"collection"`
	Index      int        `json:"index"`
}

func (a RemoveItemAction) Apply(f *model.Form) *model.Form {
	return RemoveItem(f, a.Collection, a.Index)
}

type SetBulletAction struct {
	Work   int    `json:"work"`
	Bullet int    `json:"bullet"`
	Value  string `json:"value"`
}

func (a SetBulletAction) Apply(f *model.Form) *model.Form {
	return SetBullet(f, a.Work, a.Bullet, a.Value)
}

type AddBulletAction struct {
	Work int `json:"work"`
}

func (a AddBulletAction) Apply(f *model.Form) *model.Form {
	return AddBullet(f, a.Work)
}

// Reduce applies actions in order.
func Reduce(f *model.Form, actions ...Action) *model.Form {
	for _, a := range actions {
		f = a.Apply(f)
	}
	return f
}

// Check reports whether a can be applied to f as addressed. The editor
// functions ignore bad indices, attributes and values; callers handling
// untrusted input use Check to reject them instead.
func Check(f *model.Form, a Action) error {
	switch v := a.(type) {
	case SetFieldAction:
		switch v.Field {
		case FieldTitle, FieldDescription, FieldImageURL:
			return nil
		}
		return fmt.Errorf("%w: field %q", ErrUnknownTarget, v.Field)
	case SetItemAction:
		if err := checkIndex(f, v.Collection, v.Index); err != nil {
			return err
		}
		return ValidAttr(v.Collection, v.Attr, v.Value)
	case AddItemAction:
		if !v.Collection.Valid() {
			return fmt.Errorf("%w: collection %q", ErrUnknownTarget, v.Collection)
		}
		return nil
	case RemoveItemAction:
		return checkIndex(f, v.Collection, v.Index)
	case SetBulletAction:
		if !BulletInBounds(f, v.Work, v.Bullet) {
			return fmt.Errorf("%w: workExperiences[%d].description[%d]", ErrOutOfRange, v.Work, v.Bullet)
		}
		return nil
	case AddBulletAction:
		return checkIndex(f, WorkExperiences, v.Work)
	}
	return ErrUnknownAction
}

func checkIndex(f *model.Form, c Collection, index int) error {
	if !c.Valid() {
		return fmt.Errorf("%w: collection %q", ErrUnknownTarget, c)
	}
	if !InBounds(f, c, index) {
		return fmt.Errorf("%w: %s[%d]", ErrOutOfRange, c, index)
	}
	return nil
}

// DecodeAction decodes one action from its wire form:
//
//	{"op": "setItem", "collection": "projects", "index": 0, "attr": "title", "value": "cvgen"}
func DecodeAction(raw []byte) (Action, error) {
	var head struct {
		Op string `json:"op"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return nil, fmt.Errorf("decode action: %w", err)
	}
	var (
		action Action
		err    error
	)
	switch head.Op {
	case "setField":
		var a SetFieldAction
		err = json.Unmarshal(raw, &a)
		action = a
	case "setItem":
		var a SetItemAction
		err = json.Unmarshal(raw, &a)
		action = a
	case "addItem":
		var a AddItemAction
		err = json.Unmarshal(raw, &a)
		action = a
	case "removeItem":
		var a RemoveItemAction
		err = json.Unmarshal(raw, &a)
		action = a
	case "setBullet":
		var a SetBulletAction
		err = json.Unmarshal(raw, &a)
		action = a
	case "addBullet":
		var a AddBulletAction
		err = json.Unmarshal(raw, &a)
		action = a
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, head.Op)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s action: %w", head.Op, err)
	}
	return action, nil
}

// DecodeActions decodes a JSON array of actions.
func DecodeActions(raw []byte) ([]Action, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode actions: %w", err)
	}
	out := make([]Action, 0, len(items))
	for i, item := range items {
		a, err := DecodeAction(item)
		if err != nil {
			return nil, fmt.Errorf("action %d: %w", i, err)
		}
		out = append(out, a)
	}
	return out, nil
}
