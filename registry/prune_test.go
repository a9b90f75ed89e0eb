/**
 * Copyright (c) 2018, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package registry_test

import (
	"github.com/botobag/typereg/internal/testutil"
	"github.com/botobag/typereg/registry"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("RemoveUnusedTypes", func() {
	var r *registry.Registry

	BeforeEach(func() {
		r = newTestRegistry(registry.Config{})
	})

	It("removes types that cannot be reached from the roots", func() {
		createScalar(r, "Date")
		createScalar(r, "Unused")
		createObject(r, "Post", field("publishedAt", "Date"))
		createObject(r, "Orphan", field("post", "Post"))
		createObject(r, "Query", field("posts", "[Post!]!"))

		r.RemoveUnusedTypes()

		Expect(r.TypeNames()).Should(Equal([]string{
			"Boolean", "Date", "Float", "ID", "Int", "Post", "Query", "String",
		}))
	})

	It("never removes built-in scalars", func() {
		createObject(r, "Query", field("id", "ID"))
		r.RemoveUnusedTypes()
		Expect(r.TypeNames()).Should(ContainElements("Int", "Float", "String", "Boolean", "ID"))
	})

	It("follows arguments, input fields, possible types and mutation roots", func() {
		r = newTestRegistry(registry.Config{
			MutationType: "Mutation",
		})

		createScalar(r, "Upload")
		Expect(r.CreateType("PostInput", testOrigin, registry.TypeKindInputObject, func(*registry.Registry) (registry.MetaType, error) {
			input := &registry.InputObjectType{TypeInfo: registry.TypeInfo{Name: "PostInput"}}
			input.InputFields.Set("attachment", &registry.InputValue{Name: "attachment", Type: "Upload"})
			return input, nil
		})).Should(Succeed())
		createObject(r, "Photo", field("url", "String!"))
		createObject(r, "Video", field("url", "String!"))
		createUnion(r, "Media", "Photo", "Video")

		createPost := field("createPost", "Media")
		createPost.AddArg(&registry.InputValue{Name: "input", Type: "PostInput!"})
		createObject(r, "Mutation", createPost)
		createObject(r, "Query", field("hello", "String"))

		r.RemoveUnusedTypes()

		Expect(r.TypeNames()).Should(ContainElements("Upload", "PostInput", "Photo", "Video", "Media", "Mutation"))
	})

	It("keeps types referenced by directive arguments", func() {
		Expect(r.CreateType("Role", testOrigin, registry.TypeKindEnum, func(*registry.Registry) (registry.MetaType, error) {
			role := &registry.EnumType{TypeInfo: registry.TypeInfo{Name: "Role"}}
			role.Values.Set("ADMIN", &registry.EnumValue{Name: "ADMIN"})
			return role, nil
		})).Should(Succeed())

		auth := &registry.MetaDirective{Name: "auth"}
		auth.Args.Set("requires", &registry.InputValue{Name: "requires", Type: "Role!"})
		r.AddDirective(auth)

		createObject(r, "Query", field("hello", "String"))
		r.RemoveUnusedTypes()

		Expect(r.TypeNames()).Should(ContainElement("Role"))
	})

	It("keeps types with federation keys", func() {
		createObject(r, "Query", field("hello", "String"))
		createScalar(r, "Money")
		createObject(r, "Product", field("upc", "String!"), field("price", "Money"))
		createObject(r, "Unkeyed", field("upc", "String!"))
		r.AddKeys("Product", "upc")

		r.RemoveUnusedTypes()

		Expect(r.TypeNames()).Should(ContainElements("Product", "Money"))
		Expect(r.TypeNames()).ShouldNot(ContainElement("Unkeyed"))
	})

	It("drops implements edges of removed types", func() {
		createInterface(r, "Node", field("id", "ID!"))
		createObject(r, "User", field("id", "ID!"))
		createObject(r, "Query", field("node", "Node"))
		r.AddImplements("User", "Node")

		r.RemoveUnusedTypes()

		// User is not reachable before implements edges are merged by Finish.
		Expect(r.Implements("User")).Should(BeEmpty())
	})

	It("produces the same schema regardless of registration order", func() {
		// Each step registers one of A, B and C. A refers to B and B refers to C. C is also a
		// possible type of Node that is only reachable through A.
		steps := map[string]func(r *registry.Registry){
			"A": func(r *registry.Registry) {
				createObject(r, "A", field("b", "B"), field("node", "Node"))
			},
			"B": func(r *registry.Registry) {
				createObject(r, "B", field("c", "[C!]"))
			},
			"C": func(r *registry.Registry) {
				createObject(r, "C", field("id", "ID!"))
				r.AddImplements("C", "Node")
			},
		}

		permutations := [][]string{
			{"A", "B", "C"},
			{"A", "C", "B"},
			{"B", "A", "C"},
			{"B", "C", "A"},
			{"C", "A", "B"},
			{"C", "B", "A"},
		}

		var expected string
		for _, permutation := range permutations {
			r := newTestRegistry(registry.Config{})
			createScalar(r, "Unused")
			createInterface(r, "Node", field("id", "ID!"))
			for _, step := range permutation {
				steps[step](r)
			}
			createObject(r, "Query", field("a", "A"))

			schema, err := r.Finish()
			Expect(err).ShouldNot(HaveOccurred())

			data, err := schema.MarshalJSON()
			Expect(err).ShouldNot(HaveOccurred())

			if len(expected) == 0 {
				expected = string(data)
				Expect(schema.TypeNames()).Should(Equal([]string{
					"A", "B", "Boolean", "C", "Float", "ID", "Int", "Node", "Query", "String",
				}))
				continue
			}
			Expect(data).Should(testutil.EqualText(expected), "permutation %v", permutation)
		}
	})
})
