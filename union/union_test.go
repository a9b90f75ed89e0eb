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

package union_test

import (
	"context"

	"github.com/botobag/typereg/internal/testutil"
	"github.com/botobag/typereg/registry"
	"github.com/botobag/typereg/union"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Union", func() {
	var (
		photoType   *objectType
		videoType   *objectType
		articleType *objectType
		media       *union.Union
		feed        *union.Union
	)

	BeforeEach(func() {
		photoType = &objectType{name: "Photo", fields: []string{"url"}}
		videoType = &objectType{name: "Video", fields: []string{"url"}}
		articleType = &objectType{name: "Article", fields: []string{"title"}}

		media = union.MustNew(&union.Config{
			Name: "Media",
			Members: []union.Member{
				union.Direct("Photo", photoType, photo{}),
				union.Direct("Video", videoType, video{}),
			},
		})

		feed = union.MustNew(&union.Config{
			Name:        "FeedItem",
			Description: "An item in the feed",
			Members: []union.Member{
				union.Direct("Article", articleType, article{}),
				union.Flattened("Media", media),
			},
		})
	})

	Describe("New", func() {
		It("requires a name", func() {
			_, err := union.New(&union.Config{
				Members: []union.Member{union.Direct("Photo", photoType, photo{})},
			})
			Expect(err).Should(testutil.MatchRegistryError(
				testutil.OpIs("union.New"),
				testutil.KindIs(registry.ErrKindComposition),
				testutil.MessageEqual("Must provide name for Union."),
			))
		})

		It("requires members", func() {
			_, err := union.New(&union.Config{Name: "Empty"})
			Expect(err).Should(testutil.MatchRegistryError(
				testutil.KindIs(registry.ErrKindComposition),
				testutil.CauseOfType(new(*registry.EmptyUnionError)),
			))
			Expect(err.Error()).Should(ContainSubstring("union Empty must include one or more unique member types"))
		})

		It("rejects duplicate members", func() {
			for _, members := range [][]union.Member{
				// Same variant
				{union.Direct("Photo", photoType, photo{}), union.Direct("Photo", videoType, video{})},
				// Same Go type
				{union.Direct("Photo", photoType, photo{}), union.Direct("Picture", photoType, photo{})},
				// Same nested union
				{union.Flattened("Media", media), union.Flattened("MoreMedia", media)},
				// Same GraphQL type with different Go types
				{union.Direct("Photo", photoType, photo{}), union.Direct("PhotoPtr", photoType, &photo{})},
				// Distinct definitions with the same GraphQL name
				{
					union.Direct("Photo", photoType, photo{}),
					union.Direct("Picture", &objectType{name: "Photo", fields: []string{"url"}}, video{}),
				},
				// A direct member named after a nested union
				{union.Flattened("Media", media), union.Direct("Other", &objectType{name: "Media"}, article{})},
			} {
				_, err := union.New(&union.Config{
					Name:    "Duplicated",
					Members: members,
				})
				var duplicate *registry.DuplicateMemberError
				Expect(err).Should(testutil.HaveCause(&duplicate))
				Expect(duplicate.Union).Should(Equal("Duplicated"))
			}
		})

		It("rejects invalid members", func() {
			for _, member := range []union.Member{
				union.Flattened("Media", nil),
				{Variant: "Photo", Type: photoType},
				{Variant: "Photo", Type: photoType, Flatten: true},
			} {
				_, err := union.New(&union.Config{
					Name:    "Invalid",
					Members: []union.Member{member},
				})
				Expect(err).Should(testutil.MatchRegistryError(
					testutil.KindIs(registry.ErrKindComposition),
					testutil.CauseOfType(new(*registry.InvalidMemberError)),
				), "member %s", member.Variant)
			}
		})

		It("panics on invalid config in MustNew", func() {
			Expect(func() { union.MustNew(&union.Config{Name: "Empty"}) }).Should(Panic())
		})
	})

	Describe("CreateTypeInfo", func() {
		var r *registry.Registry

		BeforeEach(func() {
			r = newTestRegistry()
		})

		It("registers members and flattens nested unions", func() {
			name, err := feed.CreateTypeInfo(r)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(name).Should(Equal("FeedItem"))

			t, exists := r.Lookup("FeedItem")
			Expect(exists).Should(BeTrue())
			Expect(t.Kind()).Should(Equal(registry.TypeKindUnion))
			Expect(t.Info().Description).Should(Equal("An item in the feed"))
			Expect(registry.PossibleTypesOf(t).Names()).Should(Equal([]string{"Article", "Photo", "Video"}))

			t, exists = r.Lookup("Media")
			Expect(exists).Should(BeTrue())
			Expect(registry.PossibleTypesOf(t).Names()).Should(Equal([]string{"Photo", "Video"}))

			for _, name := range []string{"Article", "Photo", "Video"} {
				kind, exists := r.KindOf(name)
				Expect(exists).Should(BeTrue())
				Expect(kind).Should(Equal(registry.TypeKindObject))
			}
		})

		It("merges possible types shared by nested unions", func() {
			visual := union.MustNew(&union.Config{
				Name: "Visual",
				Members: []union.Member{
					union.Direct("Video", videoType, video{}),
				},
			})
			all := union.MustNew(&union.Config{
				Name: "All",
				Members: []union.Member{
					union.Flattened("Media", media),
					union.Flattened("Visual", visual),
				},
			})

			_, err := all.CreateTypeInfo(r)
			Expect(err).ShouldNot(HaveOccurred())

			t, _ := r.Lookup("All")
			Expect(registry.PossibleTypesOf(t).Names()).Should(Equal([]string{"Photo", "Video"}))
		})

		It("registers the same union only once", func() {
			_, err := feed.CreateTypeInfo(r)
			Expect(err).ShouldNot(HaveOccurred())
			first, _ := r.Lookup("FeedItem")

			_, err = feed.CreateTypeInfo(r)
			Expect(err).ShouldNot(HaveOccurred())
			second, _ := r.Lookup("FeedItem")
			Expect(second).Should(BeIdenticalTo(first))
		})

		It("reports conflicting definitions of the same name", func() {
			first := union.MustNew(&union.Config{
				Name:    "Media",
				Origin:  "app.Media",
				Members: []union.Member{union.Direct("Photo", photoType, photo{})},
			})
			second := union.MustNew(&union.Config{
				Name:    "Media",
				Origin:  "app.OtherMedia",
				Members: []union.Member{union.Direct("Video", videoType, video{})},
			})

			_, err := first.CreateTypeInfo(r)
			Expect(err).ShouldNot(HaveOccurred())

			_, err = second.CreateTypeInfo(r)
			Expect(err).Should(testutil.MatchRegistryError(
				testutil.KindIs(registry.ErrKindConflict),
				testutil.CauseOfType(new(*registry.NameIdentityMismatchError)),
			))
		})

		It("rejects a direct member that is not an Object", func() {
			dates := union.MustNew(&union.Config{
				Name: "Dates",
				Members: []union.Member{
					union.Direct("Date", &scalarType{name: "Date"}, ""),
				},
			})

			_, err := dates.CreateTypeInfo(r)
			Expect(err).Should(testutil.MatchRegistryError(
				testutil.OpIs("registry.CreateType"),
				testutil.KindIs(registry.ErrKindComposition),
				testutil.CauseOfType(new(*registry.InvalidMemberError)),
			))

			// The failed union is not registered while its member is.
			_, exists := r.Lookup("Dates")
			Expect(exists).Should(BeFalse())
			_, exists = r.Lookup("Date")
			Expect(exists).Should(BeTrue())
		})

		It("rejects flattening a union that is still being built", func() {
			var outer *union.Union
			// Building Photo registers Outer which flattens Media: Media is still being built at
			// the time.
			photoType.onBuild = func(r *registry.Registry) error {
				_, err := outer.CreateTypeInfo(r)
				return err
			}
			outer = union.MustNew(&union.Config{
				Name:    "Outer",
				Members: []union.Member{union.Flattened("Media", media)},
			})

			_, err := media.CreateTypeInfo(r)
			var invalid *registry.InvalidMemberError
			Expect(err).Should(testutil.HaveCause(&invalid))
			Expect(invalid.Union).Should(Equal("Outer"))
			Expect(invalid.Member).Should(Equal("Media"))
		})

		It("adds implements edges for types merged from flattened members", func() {
			visual := union.MustNew(&union.Config{
				Name:      "Visual",
				Interface: true,
				Members: []union.Member{
					union.Direct("Article", articleType, article{}),
					union.Flattened("Media", media),
				},
			})

			_, err := visual.CreateTypeInfo(r)
			Expect(err).ShouldNot(HaveOccurred())

			t, _ := r.Lookup("Visual")
			Expect(registry.PossibleTypesOf(t).Names()).Should(Equal([]string{"Article", "Photo", "Video"}))
			for _, name := range []string{"Article", "Photo", "Video"} {
				Expect(r.Implements(name)).Should(Equal([]string{"Visual"}), "type %s", name)
			}
			Expect(r.Implements("Media")).Should(BeEmpty())
		})

		It("composes an interface", func() {
			var fields registry.FieldMap
			fields.Set("url", &registry.Field{Name: "url", Type: "String!"})
			visual := union.MustNew(&union.Config{
				Name:      "Visual",
				Interface: true,
				Fields:    fields,
				Members: []union.Member{
					union.Direct("Photo", photoType, photo{}),
					union.Direct("Video", videoType, video{}),
				},
			})

			Expect(r.CreateType("Query", "", registry.TypeKindObject, func(r *registry.Registry) (registry.MetaType, error) {
				if _, err := visual.CreateTypeInfo(r); err != nil {
					return nil, err
				}
				return registry.NewObjectType("Query", &registry.Field{Name: "visual", Type: "Visual"}), nil
			})).Should(Succeed())

			t, exists := r.Lookup("Visual")
			Expect(exists).Should(BeTrue())
			Expect(t.Kind()).Should(Equal(registry.TypeKindInterface))
			Expect(registry.FieldsOf(t).Names()).Should(Equal([]string{"url"}))
			Expect(r.Implements("Photo")).Should(Equal([]string{"Visual"}))
			Expect(r.Implements("Video")).Should(Equal([]string{"Visual"}))

			schema, err := r.Finish()
			Expect(err).ShouldNot(HaveOccurred())
			Expect(schema.PossibleTypes("Visual")).Should(Equal([]string{"Photo", "Video"}))
			Expect(schema.Implements("Photo")).Should(Equal([]string{"Visual"}))
		})
	})

	Describe("Value", func() {
		It("wraps values of direct members", func() {
			value, err := feed.Wrap(article{Title: "Hello"})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(value.Union()).Should(BeIdenticalTo(feed))
			Expect(value.Tag()).Should(Equal("Article"))
			Expect(value.Inner()).Should(Equal(article{Title: "Hello"}))
			Expect(value.IntrospectionTypeName()).Should(Equal("Article"))
		})

		It("wraps values of flattened members", func() {
			value := feed.MustWrap(video{URL: "v.mp4", Duration: 30})
			Expect(value.Tag()).Should(Equal("Media"))
			Expect(value.Member().Flatten).Should(BeTrue())
			Expect(value.IntrospectionTypeName()).Should(Equal("Video"))
			Expect(value.Unwrap()).Should(Equal(video{URL: "v.mp4", Duration: 30}))

			nested, ok := value.Inner().(union.Value)
			Expect(ok).Should(BeTrue())
			Expect(nested.Union()).Should(BeIdenticalTo(media))
			Expect(nested.Tag()).Should(Equal("Video"))
		})

		It("wraps a value of a nested union", func() {
			value, err := feed.Wrap(media.MustWrap(photo{URL: "p.png"}))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(value.Tag()).Should(Equal("Media"))
			Expect(value.IntrospectionTypeName()).Should(Equal("Photo"))

			again, err := feed.Wrap(value)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(again).Should(Equal(value))
		})

		It("rejects values of other types", func() {
			_, err := feed.Wrap(42)
			Expect(err).Should(testutil.MatchRegistryError(
				testutil.OpIs("union.Wrap"),
				testutil.MessageEqual("value of type int is not a member of FeedItem"),
			))
			Expect(func() { media.MustWrap(article{}) }).Should(Panic())
		})

		It("collects fields of the active member", func() {
			var fields union.Fields
			value := feed.MustWrap(video{URL: "v.mp4", Duration: 30})
			Expect(value.CollectAllFields(context.Background(), &fields)).Should(Succeed())
			Expect(fields.Entries()).Should(Equal([]union.FieldEntry{
				{Name: "url", Value: "v.mp4"},
				{Name: "duration", Value: 30},
			}))
		})

		It("fails to collect fields from values that cannot", func() {
			var fields union.Fields
			Expect(feed.MustWrap(article{}).CollectAllFields(context.Background(), &fields)).ShouldNot(Succeed())
			Expect(union.Value{}.CollectAllFields(context.Background(), &fields)).ShouldNot(Succeed())
			Expect(fields.Len()).Should(BeZero())
		})

		It("treats the zero value as nil", func() {
			var value union.Value
			Expect(value.IsNil()).Should(BeTrue())
			Expect(value.Tag()).Should(BeEmpty())
			Expect(value.IntrospectionTypeName()).Should(BeEmpty())
			Expect(value.Member()).Should(Equal(union.Member{}))
		})
	})
})
