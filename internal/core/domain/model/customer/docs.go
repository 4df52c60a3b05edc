// Package customer provides the Customer entity of the customer registry.
//
// Key business rules:
//   - The identifier follows "<Prefix>ddd" where the prefix is configured per deployment
//   - Name must not be empty
//   - Date of birth is DD/MM/YYYY and the customer must be at least 18 (calendar years)
//   - Address must be an Australian postal address
//   - Phone must be an Australian mobile number
//   - Email must be local@domain.tld
//
// Checks run in that order and the first failure is reported.
package customer
