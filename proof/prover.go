package proof

import (
	"fmt"
	"sync"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/backend/witness"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
)

// Prover manages circuit compilation, setup, and proof generation.
type Prover struct {
	mu       sync.RWMutex
	circuits map[string]*CompiledCircuit
	curve    ecc.ID
}

// CompiledCircuit holds a compiled circuit and its keys.
type CompiledCircuit struct {
	Name         string
	CS           constraint.ConstraintSystem
	ProvingKey   groth16.ProvingKey
	VerifyingKey groth16.VerifyingKey
	Constraints  int
}

// Receipt is a generated proof together with its public inputs.
type Receipt struct {
	CircuitName   string
	Proof         groth16.Proof
	PublicWitness witness.Witness
}

// NewProver creates a prover over BN254.
func NewProver() *Prover {
	return &Prover{
		circuits: make(map[string]*CompiledCircuit),
		curve:    ecc.BN254,
	}
}

// NewLedgerProver creates a prover with the transfer and supply circuits
// compiled and registered.
func NewLedgerProver() (*Prover, error) {
	p := NewProver()
	if err := p.RegisterCircuit(CircuitTransfer, &TransferCircuit{}); err != nil {
		return nil, err
	}
	if err := p.RegisterCircuit(CircuitSupply, &SupplyCircuit{}); err != nil {
		return nil, err
	}
	return p, nil
}

// RegisterCircuit compiles a circuit, runs the trusted setup, and stores it
// under the given name.
func (p *Prover) RegisterCircuit(name string, circuit frontend.Circuit) error {
	cs, err := frontend.Compile(p.curve.ScalarField(), r1cs.NewBuilder, circuit)
	if err != nil {
		return fmt.Errorf("circuit compilation failed: %w", err)
	}

	// In production the setup would come from a ceremony.
	pk, vk, err := groth16.Setup(cs)
	if err != nil {
		return fmt.Errorf("setup failed: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.circuits[name] = &CompiledCircuit{
		Name:         name,
		CS:           cs,
		ProvingKey:   pk,
		VerifyingKey: vk,
		Constraints:  cs.GetNbConstraints(),
	}
	return nil
}

// GetCircuit returns a compiled circuit by name.
func (p *Prover) GetCircuit(name string) (*CompiledCircuit, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	cc, ok := p.circuits[name]
	return cc, ok
}

// ListCircuits returns all registered circuit names.
func (p *Prover) ListCircuits() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	names := make([]string, 0, len(p.circuits))
	for name := range p.circuits {
		names = append(names, name)
	}
	return names
}

// Prove generates a Groth16 receipt for the given circuit and assignment.
// An assignment that violates the circuit constraints fails here, at
// witness solving.
func (p *Prover) Prove(circuitName string, assignment frontend.Circuit) (*Receipt, error) {
	p.mu.RLock()
	cc, ok := p.circuits[circuitName]
	p.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("circuit %q not registered", circuitName)
	}

	w, err := frontend.NewWitness(assignment, p.curve.ScalarField())
	if err != nil {
		return nil, fmt.Errorf("witness creation failed: %w", err)
	}

	prf, err := groth16.Prove(cc.CS, cc.ProvingKey, w)
	if err != nil {
		return nil, fmt.Errorf("proof generation failed: %w", err)
	}

	public, err := w.Public()
	if err != nil {
		return nil, fmt.Errorf("public witness extraction failed: %w", err)
	}

	return &Receipt{
		CircuitName:   circuitName,
		Proof:         prf,
		PublicWitness: public,
	}, nil
}

// Verify checks a receipt against the verifying key of its circuit.
func (p *Prover) Verify(receipt *Receipt) error {
	p.mu.RLock()
	cc, ok := p.circuits[receipt.CircuitName]
	p.mu.RUnlock()

	if !ok {
		return fmt.Errorf("circuit %q not registered", receipt.CircuitName)
	}
	return groth16.Verify(receipt.Proof, cc.VerifyingKey, receipt.PublicWitness)
}
