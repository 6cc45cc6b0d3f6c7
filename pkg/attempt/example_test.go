package attempt_test

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/arthur-debert/attempt/pkg/attempt"
	"github.com/arthur-debert/attempt/pkg/kinds"
	"github.com/arthur-debert/attempt/pkg/registry"
)

func Example() {
	reg := registry.New()
	defined := registry.MustDefine(reg, "ErrorA", "ErrorB", "ErrorC")
	errA, errB, errC := defined[0], defined[1], defined[2]

	message := func(_ context.Context, err error) (string, error) {
		var f *kinds.Failure
		errors.As(err, &f)
		return f.Message(), nil
	}

	ctrl := attempt.New(func(_ context.Context, args ...error) (string, error) {
		return "", args[0]
	}, attempt.WithRegistry(reg)).
		Catch(message, errA, errB).
		Catch(message, "ErrorC")

	ctx := context.Background()
	for _, f := range []error{errA.New("first"), errB.New("second"), errC.New("third")} {
		got, _ := ctrl.Run(ctx, f)
		fmt.Println(got)
	}
	// Output:
	// first
	// second
	// third
}

func ExampleController_Else() {
	got, err := attempt.Try(func(context.Context) (int, error) {
		return 1, nil
	}).
		Catch(func(context.Context, error) (int, error) { return 2, nil }, kinds.Error).
		Else(func(context.Context) (int, error) { return 3, nil }).
		Run(context.Background())

	fmt.Println(got, err)
	// Output: 3 <nil>
}

func ExampleController_FinallyRun() {
	ctx := context.Background()
	one := func(context.Context) (int, error) { return 1, nil }
	two := func(context.Context) (int, error) { return 2, nil }

	plain, _ := attempt.Try(one).FinallyRun(ctx, two)
	overriding, _ := attempt.Try(one).FinallyRun(ctx, two, attempt.WithReturn())

	fmt.Println(plain, overriding)
	// Output: 1 2
}

func ExampleController_Async() {
	ctx := context.Background()

	future := attempt.Try(func(context.Context) (string, error) {
		return "", io.EOF
	}).
		Catch(func(_ context.Context, err error) (string, error) {
			return "caught " + err.Error(), nil
		}, "EOF").
		Async(ctx)

	got, err := future.Await(ctx)
	fmt.Println(got, err)
	// Output: caught EOF <nil>
}

func ExampleController_Catch_unhandled() {
	reg := registry.New()
	defined := registry.MustDefine(reg, "Handled", "Other")

	_, err := attempt.Try(func(context.Context) (int, error) {
		return 0, defined[1].New("nobody catches me")
	}, attempt.WithRegistry(reg)).
		Catch(func(context.Context, error) (int, error) { return 0, nil }, defined[0]).
		Run(context.Background())

	fmt.Println(err)
	// Output: Other: nobody catches me
}
