// Package shipment provides the Shipment entity and its delivery lifecycle.
//
// The package includes:
//   - Shipment: an admitted shipment referencing one vehicle and one customer
//   - Status: the delivery state machine, In Transit -> Delivered
//   - DeliveryOutcome: the result of marking a shipment delivered
//   - Candidate: admission of a new shipment, including reference resolution
//
// Key business rules:
//   - Origin and destination must not be empty
//   - Weight must be a number strictly greater than zero
//   - The vehicle and customer references must resolve when the shipment is admitted;
//     they are not re-checked afterwards, so removing the vehicle or customer later
//     leaves a dangling reference
//   - Status only advances from In Transit to Delivered and never reverts
//   - Marking a delivered shipment again changes nothing and reports AlreadyDelivered
package shipment
