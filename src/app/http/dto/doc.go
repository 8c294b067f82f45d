// Package dto contains the form and loader payloads of the HTTP layer.
//
// Naming convention:
//   - Posted forms: <Resource>Form, bound with gin's form binding
//   - Loader payloads: <Page>Data
//
// Forms carry no binding tags: a missing field is reported as a form error
// and a short one as a field error, which gin's "required" cannot tell apart.
package dto
