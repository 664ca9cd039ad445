package photo

import "encoding/json"

// RepairTypes is stored as a JSON-encoded string list; these helpers keep the
// encoding in one place.

func (p *DamagePhoto) SetRepairTypes(list []string) {
	if len(list) == 0 {
		p.RepairTypes = "[]"
		return
	}
	b, err := json.Marshal(list)
	if err != nil {
		p.RepairTypes = "[]"
		return
	}
	p.RepairTypes = string(b)
}

func (p *DamagePhoto) RepairTypeList() []string {
	if p.RepairTypes == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(p.RepairTypes), &out); err != nil {
		return nil
	}
	return out
}
