package commands

import (
	"fmt"
	"math/big"

	"rsacore/internal/domain"
)

// parseInt reads s as an integer literal; 0x, 0o, 0b prefixes and _ separators are accepted.
func parseInt(name, s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, fmt.Errorf("%w: %s %q is not an integer", domain.ErrInvalidArgument, name, s)
	}
	return v, nil
}

func parseInts(names []string, args []string) ([]*big.Int, error) {
	out := make([]*big.Int, len(args))
	for i, a := range args {
		v, err := parseInt(names[i], a)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
