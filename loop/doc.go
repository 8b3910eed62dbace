// Package loop provides single-consumer FIFO executors.
//
// Queue is a main loop: tasks posted from anywhere run on whichever goroutine
// calls Run, or on the caller of Drain. Serial runs tasks on a goroutine of
// its own that only exists while there is work.
package loop
