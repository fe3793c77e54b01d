package variable_test

import (
	"fmt"

	"github.com/katalvlaran/lvfuzzy/membership"
	"github.com/katalvlaran/lvfuzzy/variable"
)

// ExampleVariable_Fuzzify reproduces the heating controller's temperature
// memberships at 17 °C.
func ExampleVariable_Fuzzify() {
	u, _ := variable.NewUniverse(0, 50, 1)
	veryCold, _ := membership.NewTriangular(0, 0, 15)
	cold, _ := membership.NewTriangular(10, 20, 30)
	mild, _ := membership.NewTriangular(20, 25, 35)

	temp, err := variable.New("temperature", u,
		variable.Term{Name: "very_cold", Func: veryCold},
		variable.Term{Name: "cold", Func: cold},
		variable.Term{Name: "mild", Func: mild},
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	deg := temp.Fuzzify(17)
	for _, name := range temp.TermNames() {
		fmt.Printf("%s: %.2f\n", name, deg[name])
	}
	// Output:
	// very_cold: 0.00
	// cold: 0.70
	// mild: 0.00
}
