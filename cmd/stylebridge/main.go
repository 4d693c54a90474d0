// Command stylebridge runs the winstyles command bridge.
package main

func main() {
	Execute()
}
