package query

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/storefront-cli/storefront/filesystem"
	"github.com/storefront-cli/storefront/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestQuery(t *testing.T) {
	Convey("Given a lookup history", t, func() {
		viper.Set(key.SearchShowQuerySuggestions, true)
		So(Forget(), ShouldBeNil)

		So(Remember("Queijo Minas", 1), ShouldBeNil)
		So(Remember("queijo prato", 5), ShouldBeNil)
		So(Remember("  Iogurte ", 2), ShouldBeNil)

		Convey("SuggestMany should rank matches by popularity", func() {
			So(SuggestMany("qjo"), ShouldResemble, []string{"queijo prato", "queijo minas"})
		})

		Convey("Remember should add to an existing lookup", func() {
			So(Remember("QUEIJO MINAS", 10), ShouldBeNil)
			So(SuggestMany("qjo"), ShouldResemble, []string{"queijo minas", "queijo prato"})
		})

		Convey("Suggest should return the best match", func() {
			So(Suggest("iog").MustGet(), ShouldEqual, "iogurte")
			So(Suggest("pão").IsAbsent(), ShouldBeTrue)
		})

		Convey("Remember should ignore blank lookups", func() {
			So(Remember("   ", 3), ShouldBeNil)
			So(SuggestMany(""), ShouldHaveLength, 3)
		})

		Convey("Suggestions should be off when disabled", func() {
			viper.Set(key.SearchShowQuerySuggestions, false)
			So(SuggestMany("qjo"), ShouldBeEmpty)
		})

		Convey("Forget should drop everything", func() {
			So(Forget(), ShouldBeNil)
			So(SuggestMany("qjo"), ShouldBeEmpty)
		})
	})

	Convey("sanitize should trim and lower", t, func() {
		So(sanitize("  IOGURTE  "), ShouldEqual, "iogurte")
	})
}
