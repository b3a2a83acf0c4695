package engine

import "github.com/ranok/entro/mask"

// Generate draws one uniformly random member per mask position and
// concatenates them in order. Samples come from math/rand on purpose: this
// produces demo passphrases for eyeballing a mask's shape, not secrets.
func (e *Engine) Generate(m mask.Mask) (string, error) {
	out := ""
	for _, token := range m {
		members, err := e.Resolve(token)
		if err != nil {
			return "", err
		}
		out += members[e.rng.Intn(len(members))]
	}
	return out, nil
}
