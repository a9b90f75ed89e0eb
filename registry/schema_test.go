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
	"errors"

	"github.com/botobag/typereg/internal/testutil"
	"github.com/botobag/typereg/registry"
	"github.com/botobag/typereg/typeref"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Finish", func() {
	var r *registry.Registry

	BeforeEach(func() {
		r = newTestRegistry(registry.Config{})
	})

	It("requires the query root", func() {
		createObject(r, "User", field("id", "ID!"))

		schema, err := r.Finish()
		Expect(schema).Should(BeNil())
		Expect(err).Should(testutil.MatchRegistryError(
			testutil.OpIs("registry.Finish"),
			testutil.KindIs(registry.ErrKindValidation),
		))
		Expect(errors.Is(err, registry.ErrMissingQueryRoot)).Should(BeTrue())
	})

	It("requires the query root to be an object", func() {
		createUnion(r, "Query", "User")
		createObject(r, "User", field("id", "ID!"))

		_, err := r.Finish()
		Expect(err).Should(testutil.MatchRegistryError(
			testutil.KindIs(registry.ErrKindValidation),
			testutil.CauseOfType(new(*registry.NameKindMismatchError)),
		))
	})

	It("requires configured mutation and subscription roots", func() {
		r = newTestRegistry(registry.Config{
			QueryType:        "RootQuery",
			SubscriptionType: "Subscription",
		})
		createObject(r, "RootQuery", field("hello", "String"))

		_, err := r.Finish()
		var unknown *registry.UnknownTypeError
		Expect(err).Should(testutil.HaveCause(&unknown))
		Expect(unknown.Name).Should(Equal("Subscription"))
	})

	It("marks the subscription root", func() {
		r = newTestRegistry(registry.Config{
			MutationType:     "Mutation",
			SubscriptionType: "Subscription",
		})
		createObject(r, "Query", field("hello", "String"))
		createObject(r, "Mutation", field("like", "Int"))
		createObject(r, "Subscription", field("ticks", "Int!"))

		schema, err := r.Finish()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(schema.QueryType().Name).Should(Equal("Query"))
		Expect(schema.MutationType().Name).Should(Equal("Mutation"))
		Expect(schema.SubscriptionType().IsSubscription).Should(BeTrue())
		Expect(schema.QueryType().IsSubscription).Should(BeFalse())
	})

	It("rejects an unknown possible type", func() {
		createObject(r, "Query", field("search", "SearchResult"))
		createObject(r, "User", field("id", "ID!"))
		createUnion(r, "SearchResult", "User", "Ghost")

		_, err := r.Finish()
		Expect(err).Should(testutil.MatchRegistryError(
			testutil.KindIs(registry.ErrKindValidation),
		))

		var unknown *registry.UnknownTypeError
		Expect(errors.As(err, &unknown)).Should(BeTrue())
		Expect(unknown.Name).Should(Equal("Ghost"))
		Expect(unknown.ReferencedBy).Should(Equal("SearchResult"))
	})

	It("rejects a possible type that is not an object", func() {
		createObject(r, "Query", field("search", "SearchResult"))
		createScalar(r, "Date")
		createUnion(r, "SearchResult", "Date")

		_, err := r.Finish()
		var mismatch *registry.NameKindMismatchError
		Expect(err).Should(testutil.HaveCause(&mismatch))
		Expect(mismatch.Name).Should(Equal("Date"))
		Expect(mismatch.Requested).Should(Equal(registry.TypeKindObject))
	})

	It("suggests similar names for an unknown field type", func() {
		createObject(r, "User", field("id", "ID!"))
		createObject(r, "Query", field("me", "Usr"))

		_, err := r.Finish()
		var unknown *registry.UnknownTypeError
		Expect(err).Should(testutil.HaveCause(&unknown))
		Expect(unknown.ReferencedBy).Should(Equal("Query.me"))
		Expect(unknown.Suggestions).Should(ContainElement("User"))
		Expect(err.Error()).Should(ContainSubstring(`Did you mean "User"`))
	})

	It("prunes an unreachable type with a dangling reference", func() {
		createObject(r, "Query", field("hello", "String"))
		createObject(r, "Orphan", field("ghost", "Ghost"))
		createUnion(r, "Lost", "Ghost")

		schema, err := r.Finish()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(schema.TypeNames()).ShouldNot(ContainElement("Orphan"))
		Expect(schema.TypeNames()).ShouldNot(ContainElement("Lost"))
	})

	It("rejects an implements edge to a type that is not an interface", func() {
		createObject(r, "Query", field("me", "User"))
		createObject(r, "User", field("id", "ID!"))
		r.AddImplements("User", "Query")

		_, err := r.Finish()
		var mismatch *registry.NameKindMismatchError
		Expect(err).Should(testutil.HaveCause(&mismatch))
		Expect(mismatch.Requested).Should(Equal(registry.TypeKindInterface))
	})

	Describe("Schema", func() {
		var schema *registry.Schema

		BeforeEach(func() {
			createInterface(r, "Node", field("id", "ID!"))
			createInterface(r, "Named", field("name", "String!"))
			createObject(r, "User", field("id", "ID!"), field("name", "String!"))
			createObject(r, "Product", field("id", "ID!"))
			createObject(r, "Comment", field("text", "String"))
			createUnion(r, "SearchResult", "User", "Comment")
			r.AddImplements("User", "Node")
			r.AddImplements("User", "Named")
			r.AddImplements("Product", "Node")

			node := field("node", "Node")
			node.AddArg(&registry.InputValue{Name: "id", Type: "ID!"})
			createObject(r, "Query",
				node,
				field("search", "[SearchResult!]!"),
				field("named", "Named"),
			)

			var err error
			schema, err = r.Finish()
			Expect(err).ShouldNot(HaveOccurred())
		})

		It("merges implements edges into possible types", func() {
			Expect(schema.PossibleTypes("Node")).Should(Equal([]string{"Product", "User"}))
			Expect(schema.PossibleTypes("Named")).Should(Equal([]string{"User"}))
			Expect(schema.PossibleTypes("User")).Should(BeNil())

			Expect(schema.Implements("User")).Should(Equal([]string{"Named", "Node"}))
			Expect(schema.IsPossibleType("Node", "Product")).Should(BeTrue())
			Expect(schema.IsPossibleType("Named", "Product")).Should(BeFalse())
			Expect(schema.IsPossibleType("User", "User")).Should(BeFalse())
		})

		It("looks up types by type reference", func() {
			t, exists := schema.ConcreteTypeByName("[SearchResult!]!")
			Expect(exists).Should(BeTrue())
			Expect(t.Kind()).Should(Equal(registry.TypeKindUnion))

			t, exists = schema.ConcreteTypeByParsedType(typeref.MustParse("Node"))
			Expect(exists).Should(BeTrue())
			Expect(t.Kind()).Should(Equal(registry.TypeKindInterface))

			_, exists = schema.Lookup("Ghost")
			Expect(exists).Should(BeFalse())
		})

		It("computes overlap of types", func() {
			node, named := mustLookup(schema, "Node"), mustLookup(schema, "Named")
			user, product, comment := mustLookup(schema, "User"), mustLookup(schema, "Product"),
				mustLookup(schema, "Comment")
			search := mustLookup(schema, "SearchResult")

			Expect(schema.TypeOverlap(node, node)).Should(BeTrue())
			Expect(schema.TypeOverlap(node, user)).Should(BeTrue())
			Expect(schema.TypeOverlap(user, product)).Should(BeFalse())
			Expect(schema.TypeOverlap(node, named)).Should(BeTrue())
			Expect(schema.TypeOverlap(search, node)).Should(BeTrue())
			Expect(schema.TypeOverlap(search, product)).Should(BeFalse())
			Expect(schema.TypeOverlap(comment, named)).Should(BeFalse())
		})

		It("lists directives by name", func() {
			var names []string
			for _, directive := range schema.Directives() {
				names = append(names, directive.Name)
			}
			Expect(names).Should(Equal([]string{"deprecated", "include", "skip", "specifiedBy"}))

			include, exists := schema.Directive("include")
			Expect(exists).Should(BeTrue())
			arg, _ := include.Args.Get("if")
			Expect(arg.Type).Should(Equal("Boolean!"))
		})

		It("serializes into JSON", func() {
			type typeSummary struct {
				Name          string   `json:"name"`
				Kind          string   `json:"kind"`
				Interfaces    []string `json:"interfaces"`
				PossibleTypes []string `json:"possibleTypes"`
			}
			type schemaSummary struct {
				QueryType string        `json:"queryType"`
				Types     []typeSummary `json:"types"`
			}

			Expect(schema).Should(testutil.SerializeToJSONAs(schemaSummary{
				QueryType: "Query",
				Types: []typeSummary{
					{Name: "Boolean", Kind: "Scalar"},
					{Name: "Comment", Kind: "Object"},
					{Name: "Float", Kind: "Scalar"},
					{Name: "ID", Kind: "Scalar"},
					{Name: "Int", Kind: "Scalar"},
					{Name: "Named", Kind: "Interface", PossibleTypes: []string{"User"}},
					{Name: "Node", Kind: "Interface", PossibleTypes: []string{"Product", "User"}},
					{Name: "Product", Kind: "Object", Interfaces: []string{"Node"}},
					{Name: "Query", Kind: "Object"},
					{Name: "SearchResult", Kind: "Union", PossibleTypes: []string{"Comment", "User"}},
					{Name: "String", Kind: "Scalar"},
					{Name: "User", Kind: "Object", Interfaces: []string{"Named", "Node"}},
				},
			}))
		})
	})
})
