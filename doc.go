// Package accumulator is organized as:
//
//   - github.com/kazmiller0/esa-go/digest      - application-value to field-element mapping
//   - github.com/kazmiller0/esa-go/poly        - polynomial algebra and extended GCD
//   - github.com/kazmiller0/esa-go/setup       - trusted-setup secret scalar and G2_POWER
//   - github.com/kazmiller0/esa-go (this one)  - the accumulator itself and its proofs
package accumulator
