// Package errors provides the structured error type shared by every layer
// of pokelookup.
//
// An Error carries a Code, a user-facing Message, an optional Cause and a
// Meta map. The lookup layer uses Meta for hints shown under the message:
//
//	err := errors.NotFoundf("invalid pokemon: %s", slug).
//	    WithTip("try running 'pokelookup list "+slug+"'")
//
// The resource client classifies upstream failures:
//
//   - NotFound: the service answered 404 for the requested slug
//   - Unavailable: transport failure or a non-404 error status
//   - DataLoss: the body could not be decoded into the expected shape
//
// Orchestrators wrap those with subject context, preserving the code:
//
//	if err != nil {
//	    return nil, errors.Wrapf(err, "API error: could not retrieve abilities for %s", name)
//	}
//
// The command line maps codes to exit statuses with ExitStatus, and the gRPC
// handler converts with ToGRPCError. FromGRPCError restores the Error,
// Meta included, on the client side.
//
// Config and request validation use the ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("base_url", cfg.BaseURL, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors

// Metadata keys understood by the command line renderer
const (
	MetaTip        = "tip"
	MetaSuggestion = "suggestion"
)
