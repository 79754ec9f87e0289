// Package proof produces Groth16 receipts for ledger transitions. A receipt
// proves that the balance arithmetic of a committed operation was performed
// correctly — no underflow, exact conservation — without revealing the
// transferred amount, which stays a private witness.
package proof

import "github.com/consensys/gnark/frontend"

// Registered circuit names.
const (
	CircuitTransfer = "transfer"
	CircuitSupply   = "supply"
)

// TransferCircuit proves the balance arithmetic of a transfer between two
// accounts: the amount does not exceed the sender's prior balance, and both
// post-balances follow from the pre-balances by exactly that amount. The
// four balances are public; the amount is private.
type TransferCircuit struct {
	SenderBefore   frontend.Variable `gnark:",public"`
	ReceiverBefore frontend.Variable `gnark:",public"`
	SenderAfter    frontend.Variable `gnark:",public"`
	ReceiverAfter  frontend.Variable `gnark:",public"`
	Amount         frontend.Variable
}

// Define declares the transfer constraints.
func (c *TransferCircuit) Define(api frontend.API) error {
	api.AssertIsLessOrEqual(c.Amount, c.SenderBefore)
	api.AssertIsEqual(c.SenderAfter, api.Sub(c.SenderBefore, c.Amount))
	api.AssertIsEqual(c.ReceiverAfter, api.Add(c.ReceiverBefore, c.Amount))
	return nil
}

// SupplyCircuit proves that a mint or burn moved the total supply by
// exactly the private amount. Burn selects the direction: 0 mints, 1 burns.
// A burn may not exceed the prior supply.
type SupplyCircuit struct {
	SupplyBefore frontend.Variable `gnark:",public"`
	SupplyAfter  frontend.Variable `gnark:",public"`
	Burn         frontend.Variable `gnark:",public"`
	Amount       frontend.Variable
}

// Define declares the supply constraints.
func (c *SupplyCircuit) Define(api frontend.API) error {
	api.AssertIsBoolean(c.Burn)
	api.AssertIsLessOrEqual(api.Mul(c.Burn, c.Amount), c.SupplyBefore)
	minted := api.Add(c.SupplyBefore, c.Amount)
	burned := api.Sub(c.SupplyBefore, c.Amount)
	api.AssertIsEqual(c.SupplyAfter, api.Select(c.Burn, burned, minted))
	return nil
}

// TransferAssignment builds the witness for a transfer proof from ledger
// balances.
func TransferAssignment(senderBefore, receiverBefore, senderAfter, receiverAfter, amount uint64) *TransferCircuit {
	return &TransferCircuit{
		SenderBefore:   senderBefore,
		ReceiverBefore: receiverBefore,
		SenderAfter:    senderAfter,
		ReceiverAfter:  receiverAfter,
		Amount:         amount,
	}
}

// MintAssignment builds the witness for a mint proof.
func MintAssignment(supplyBefore, supplyAfter, amount uint64) *SupplyCircuit {
	return &SupplyCircuit{
		SupplyBefore: supplyBefore,
		SupplyAfter:  supplyAfter,
		Burn:         0,
		Amount:       amount,
	}
}

// BurnAssignment builds the witness for a burn proof.
func BurnAssignment(supplyBefore, supplyAfter, amount uint64) *SupplyCircuit {
	return &SupplyCircuit{
		SupplyBefore: supplyBefore,
		SupplyAfter:  supplyAfter,
		Burn:         1,
		Amount:       amount,
	}
}
