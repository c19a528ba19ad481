package domain

import "encoding/json"

// Images and interests are stored as JSON text columns; these helpers move
// them between the db shape and the API shape.

func (p *Product) DecodeImages() {
	p.Images = decodeList(p.ImagesJSON)
}

func (p *Product) EncodeImages() {
	p.ImagesJSON = encodeList(p.Images)
}

func (u *User) DecodeInterests() {
	u.Interests = decodeList(u.InterestsJSON)
}

func (u *User) EncodeInterests() {
	u.InterestsJSON = encodeList(u.Interests)
}

func decodeList(s string) []string {
	out := []string{}
	if s == "" {
		return out
	}
	_ = json.Unmarshal([]byte(s), &out)
	return out
}

func encodeList(v []string) string {
	if v == nil {
		v = []string{}
	}
	b, _ := json.Marshal(v)
	return string(b)
}
