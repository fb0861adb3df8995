package hookflow_test

import (
	"context"
	"fmt"

	"github.com/bjaus/hookflow"
)

func starPayload() map[string]any {
	return map[string]any{
		"action": "created",
		"repository": map[string]any{
			"id":        float64(7),
			"name":      "api",
			"full_name": "acme/api",
			"owner":     map[string]any{"login": "acme", "id": float64(1)},
		},
		"sender": map[string]any{"login": "doodla", "id": float64(2)},
	}
}

func Example() {
	r := hookflow.New()

	// Register a handler scoped to one action and one repository.
	r.On("star", func(ctx context.Context, e *hookflow.Event) error {
		fmt.Printf("%s starred %s\n", e.Sender().String("login"), e.Repository().String("full_name"))
		return nil
	}, hookflow.WithActions("created"), hookflow.WithRepositories("acme/api"))

	r.Dispatch(context.Background(), "star", starPayload())

	// Output:
	// doodla starred acme/api
}

func Example_bytes() {
	r := hookflow.New()
	r.On("star", func(ctx context.Context, e *hookflow.Event) error {
		fmt.Println("star from", e.Sender().String("login"))
		return nil
	}, hookflow.WithActions("created"))

	raw := []byte(`{
		"action": "created",
		"repository": {"id": 7, "name": "api", "full_name": "acme/api", "owner": {"login": "acme", "id": 1}},
		"sender": {"login": "doodla", "id": 2}
	}`)

	// A delivery whose action no registration wants is dropped without a
	// full decode.
	if err := r.DispatchBytes(context.Background(), "star", raw); err != nil {
		fmt.Println("dispatch:", err)
	}

	// Output:
	// star from doodla
}

func ExampleParse() {
	e := hookflow.Parse("star", starPayload())

	fmt.Println(e.Name(), e.Action(), e.Fallback())

	// Output:
	// star created false
}

func ExampleExpand() {
	template := "https://api.github.com/users/doodla/following{/other_user}"

	fmt.Println(hookflow.Expand(template, hookflow.P("other_user", "hubot")))
	fmt.Println(hookflow.Expand(template, hookflow.P("other_user", nil)))

	// Output:
	// https://api.github.com/users/doodla/following/hubot
	// https://api.github.com/users/doodla/following
}

func ExamplePeekBytes() {
	raw := []byte(`{"action": "opened", "repository": {"full_name": "acme/api"}}`)

	p, err := hookflow.PeekBytes(raw)
	if err != nil {
		fmt.Println("peek:", err)
		return
	}
	fmt.Println(p.Action(), p.Repository())

	// Output:
	// opened acme/api
}
