/*
Copyright 2024 The Timefmt Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"log"

	"timefmt.io/timefmt/go/cmd/timefmt/cmd"
)

func main() {
	if err := cmd.Main().Execute(); err != nil {
		log.Fatal(err)
	}
}
