// Package attempt runs a fallible operation and dispatches on the kind of
// failure it raises, in the shape of try / catch / else / finally.
//
//	reg := registry.New()
//	kinds := registry.MustDefine(reg, "ErrorA", "ErrorB", "ErrorC")
//
//	ctrl := attempt.New(op, attempt.WithRegistry(reg)).
//		Catch(handleAB, kinds[0], kinds[1]).
//		Catch(handleC, "ErrorC").
//		Else(onSuccess).
//		Finally(cleanup)
//
//	value, err := ctrl.Run(ctx, input)
//
// # Phases
//
// TRY calls the operation. When it raises, CATCH classifies the error to a
// single kind (kinds.Classify) and runs the first clause, in insertion order,
// whose set holds that exact kind. Ancestry is not consulted. Without a
// matching clause the original error is returned after FINALLY. When the
// operation succeeds, ELSE replaces its result; an error raised by ELSE is
// never matched against the controller's own clauses. FINALLY always runs:
// its result is discarded unless WithReturn is given, in which case it
// replaces whatever was pending, and an error it raises wins over everything.
//
// # Blocking and suspending runs
//
// Run executes every phase on the calling goroutine. Async runs the same
// state machine as one task on its own goroutine, spawning each phase and
// parking until it settles, and returns a Future. Both share a single
// implementation of the phases, so for steps that never block they produce
// the same value or the same error. Panics in any phase are recovered into
// *kinds.PanicError and routed like other failures.
//
// Configuration mistakes (a clause without targets or handler, or a target
// unknown to the registry) panic with an *errors.AttemptError at the builder
// call. A controller must be fully built before it is shared; after that any
// number of goroutines may run it.
package attempt
