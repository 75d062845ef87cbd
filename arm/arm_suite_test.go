package arm_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestArm(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Arm Suite")
}
