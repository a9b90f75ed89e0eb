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
	"os"
	"path/filepath"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/botobag/typereg/internal/testutil"
	"github.com/botobag/typereg/registry"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	. "github.com/onsi/gomega/gstruct"
)

var _ = Describe("Config", func() {
	It("loads from YAML", func() {
		config, err := registry.LoadConfig(strings.NewReader(heredoc.Doc(`
			query: RootQuery
			mutation: RootMutation
			federation: true
			ignoreNameConflicts:
			  - PageInfo
			  - Cursor
		`)))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(config).Should(PointTo(MatchFields(IgnoreExtras, Fields{
			"QueryType":           Equal("RootQuery"),
			"MutationType":        Equal("RootMutation"),
			"SubscriptionType":    BeEmpty(),
			"EnableFederation":    BeTrue(),
			"IgnoreNameConflicts": Equal([]string{"PageInfo", "Cursor"}),
		})))
	})

	It("defaults the query root", func() {
		config, err := registry.LoadConfig(strings.NewReader(""))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(config.QueryType).Should(Equal(registry.DefaultQueryTypeName))
		Expect(config.EnableFederation).Should(BeFalse())

		config, err = registry.LoadConfig(strings.NewReader("subscription: Subscription\n"))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(config.QueryType).Should(Equal("Query"))
		Expect(config.SubscriptionType).Should(Equal("Subscription"))
	})

	It("rejects unknown keys", func() {
		_, err := registry.LoadConfig(strings.NewReader(heredoc.Doc(`
			query: Query
			querty: Query
		`)))
		Expect(err).Should(testutil.MatchRegistryError(
			testutil.OpIs("registry.LoadConfig"),
			testutil.KindIs(registry.ErrKindValidation),
			testutil.MessageEqual("invalid registry config"),
		))
	})

	It("loads from a file", func() {
		dir, err := os.MkdirTemp("", "typereg")
		Expect(err).ShouldNot(HaveOccurred())
		defer os.RemoveAll(dir)

		path := filepath.Join(dir, "registry.yaml")
		Expect(os.WriteFile(path, []byte("query: Root\n"), 0o600)).Should(Succeed())

		config, err := registry.LoadConfigFile(path)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(config.QueryType).Should(Equal("Root"))

		_, err = registry.LoadConfigFile(filepath.Join(dir, "missing.yaml"))
		Expect(err).Should(testutil.MatchRegistryError(
			testutil.OpIs("registry.LoadConfigFile"),
			testutil.CauseOfType(new(*os.PathError)),
		))
		Expect(os.IsNotExist(errors.Unwrap(err))).Should(BeTrue())
	})

	It("configures the registry", func() {
		config, err := registry.LoadConfig(strings.NewReader("query: Root\n"))
		Expect(err).ShouldNot(HaveOccurred())

		r := registry.NewRegistry(config)
		Expect(r.Config().QueryType).Should(Equal("Root"))

		createObject(r, "Root", field("hello", "String"))
		schema, err := r.Finish()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(schema.QueryType().Name).Should(Equal("Root"))
	})
})
