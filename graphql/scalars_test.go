/**
 * Copyright (c) 2026, The graphql-js Authors.
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

package graphql_test

import (
	"math"

	"github.com/mariam1019/graphql-js/graphql"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Built-in scalars", func() {
	Describe("Int", func() {
		It("coerces result values", func() {
			Expect(graphql.Int.CoerceResultValue(1)).Should(Equal(1))
			Expect(graphql.Int.CoerceResultValue(int32(2))).Should(Equal(2))
			Expect(graphql.Int.CoerceResultValue(int64(3))).Should(Equal(3))
			Expect(graphql.Int.CoerceResultValue(4.0)).Should(Equal(4))
			Expect(graphql.Int.CoerceResultValue(true)).Should(Equal(1))
			Expect(graphql.Int.CoerceResultValue(false)).Should(Equal(0))
			Expect(graphql.Int.CoerceResultValue("5")).Should(Equal(5))
		})

		It("rejects lossy result values", func() {
			_, err := graphql.Int.CoerceResultValue(0.1)
			Expect(err).Should(MatchError("Int cannot represent non-integer value: 0.1"))

			_, err = graphql.Int.CoerceResultValue(int64(math.MaxInt32) + 1)
			Expect(err).Should(MatchError(
				"Int cannot represent non 32-bit signed integer value: 2147483648"))

			_, err = graphql.Int.CoerceResultValue("one")
			Expect(err).Should(HaveOccurred())
		})
	})

	Describe("Float", func() {
		It("coerces result values", func() {
			Expect(graphql.Float.CoerceResultValue(4.2)).Should(Equal(4.2))
			Expect(graphql.Float.CoerceResultValue(float32(0.5))).Should(Equal(0.5))
			Expect(graphql.Float.CoerceResultValue(1)).Should(Equal(1.0))
			Expect(graphql.Float.CoerceResultValue(true)).Should(Equal(1.0))
			Expect(graphql.Float.CoerceResultValue("0.25")).Should(Equal(0.25))
		})

		It("rejects non-numeric result values", func() {
			_, err := graphql.Float.CoerceResultValue("one")
			Expect(err).Should(MatchError(`Float cannot represent non numeric value: "one"`))
		})
	})

	Describe("String", func() {
		It("coerces result values", func() {
			Expect(graphql.String.CoerceResultValue("hi")).Should(Equal("hi"))
			Expect(graphql.String.CoerceResultValue(true)).Should(Equal("true"))
			Expect(graphql.String.CoerceResultValue(4)).Should(Equal("4"))
			Expect(graphql.String.CoerceResultValue(4.5)).Should(Equal("4.5"))
		})
	})

	Describe("Boolean", func() {
		It("coerces result values", func() {
			Expect(graphql.Boolean.CoerceResultValue(true)).Should(Equal(true))
			Expect(graphql.Boolean.CoerceResultValue(0)).Should(Equal(false))
			Expect(graphql.Boolean.CoerceResultValue(int64(7))).Should(Equal(true))
		})

		It("rejects non-boolean result values", func() {
			_, err := graphql.Boolean.CoerceResultValue("true")
			Expect(err).Should(MatchError("Boolean cannot represent a non boolean value: true"))
		})
	})

	Describe("ID", func() {
		It("coerces result values to strings", func() {
			Expect(graphql.ID.CoerceResultValue("abc")).Should(Equal("abc"))
			Expect(graphql.ID.CoerceResultValue(4)).Should(Equal("4"))
			Expect(graphql.ID.CoerceResultValue(int64(12))).Should(Equal("12"))
		})

		It("rejects non-identifier result values", func() {
			_, err := graphql.ID.CoerceResultValue(1.5)
			Expect(err).Should(MatchError("ID cannot represent value: 1.5"))
		})
	})

	It("exposes the standard set", func() {
		Expect(graphql.StandardTypes()).Should(Equal([]*graphql.Scalar{
			graphql.Int, graphql.Float, graphql.String, graphql.Boolean, graphql.ID,
		}))
	})
})
