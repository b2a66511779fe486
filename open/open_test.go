package open

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/storefront-cli/storefront/constant"
)

func TestCommand(t *testing.T) {
	Convey("command should pick the platform handler", t, func() {
		cmd, err := command(constant.Linux, "/shop/products.txt", "")
		So(err, ShouldBeNil)
		So(cmd.Args, ShouldResemble, []string{"xdg-open", "/shop/products.txt"})

		cmd, err = command(constant.Darwin, "/shop/products.txt", "")
		So(err, ShouldBeNil)
		So(cmd.Args, ShouldResemble, []string{"open", "/shop/products.txt"})
	})

	Convey("command should run the named application", t, func() {
		cmd, err := command(constant.Linux, "/shop/products.txt", "vim")
		So(err, ShouldBeNil)
		So(cmd.Args, ShouldResemble, []string{"vim", "/shop/products.txt"})

		cmd, err = command(constant.Darwin, "/shop/products.txt", "TextEdit")
		So(err, ShouldBeNil)
		So(cmd.Args, ShouldResemble, []string{"open", "-a", "TextEdit", "/shop/products.txt"})
	})

	Convey("command should fail on unknown platforms", t, func() {
		_, err := command("plan9", "/shop/products.txt", "")
		So(err, ShouldNotBeNil)
	})
}
