package uuidb64_test

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/viant/uuidb64"
)

func ExampleFromUUID() {
	id := uuidb64.FromUUID(uuid.MustParse("b0c1ee86-6f46-4f1b-8d8b-7849e75dbcee"))
	fmt.Println(id)
	fmt.Printf("%#v\n", id)
	fmt.Println(id.Hex())
	// Output:
	// sMHuhm9GTxuNi3hJ51287g
	// UuidB64(sMHuhm9GTxuNi3hJ51287g)
	// b0c1ee86-6f46-4f1b-8d8b-7849e75dbcee
}

func ExampleParse() {
	id, err := uuidb64.Parse("sMHuhm9GTxuNi3hJ51287g")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(id.UUID())

	_, err = uuidb64.Parse("sMHuhm9GTxuNi3hJ51287g==")
	fmt.Println(err)
	// Output:
	// b0c1ee86-6f46-4f1b-8d8b-7849e75dbcee
	// uuidb64: invalid identifier text "sMHuhm9GTxuNi3hJ51287g=="
}

func ExampleUUID_MarshalJSON() {
	type order struct {
		ID   uuidb64.UUID `json:"id"`
		Item string       `json:"item"`
	}
	data, _ := json.Marshal(order{ID: uuidb64.MustParse("sMHuhm9GTxuNi3hJ51287g"), Item: "book"})
	fmt.Println(string(data))
	// Output: {"id":"sMHuhm9GTxuNi3hJ51287g","item":"book"}
}
