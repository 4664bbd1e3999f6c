package main

import (
	"github.com/arjunaarunatheym-jpg/MddrcFinanceHR-sub001/cmd"
)

func main() {
	cmd.Execute()
}
