// SPDX-License-Identifier: MIT

package spin_test

import (
	"fmt"

	"github.com/katalvlaran/isingdos/spin"
)

// ExampleCanonical shows that a configuration and its spin reversal share
// one representative, the one that starts with Down.
func ExampleCanonical() {
	c := spin.Configuration{spin.Up, spin.Down, spin.Up, spin.Up}

	fmt.Println(spin.Canonical(c))
	fmt.Println(spin.Canonical(spin.Negate(c)))
	// Output:
	// -+--
	// -+--
}
