// Command pngtext reads, writes, and strips tEXt metadata in PNG files.
package main

func main() {
	execute()
}
