// Package container provides generic LIFO and FIFO containers built on a
// singly linked chain of nodes terminated by a sentinel.
//
// Both containers own their chain exclusively. Copy-producing operations
// (Stack.SubStack, Queue.FilterPrefix) allocate fresh nodes and never share
// structure with the source.
package container
