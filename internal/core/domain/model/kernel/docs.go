// Package kernel provides core domain primitives shared by the vehicle, customer
// and shipment models.
//
// The package includes:
//   - IdentifierFormat: the "<Prefix>ddd..." identifier pattern of one entity type
//   - Field validators: pure predicates for every attribute domain (capacity, weight,
//     date of birth, Australian address and mobile phone, email)
//   - Entity and Candidate: the contracts a registry relies on to check uniqueness
//     and to admit a record
//   - Clock: the time source used for age checks and delivery timestamps
//
// Validators never panic and never return errors; the entity packages turn a false
// result into the matching errs type.
package kernel
