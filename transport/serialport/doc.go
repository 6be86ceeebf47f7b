// Package serialport provides the serial UART transport for talking to
// the doorlock controller.
//
// It implements the link.Port interface over go.bug.st/serial: whole-buffer
// writes plus exact-length reads under a deadline. The controller speaks
// 8N1 at 9600 baud.
//
//	port, err := serialport.Open("/dev/ttyUSB0", serialport.DefaultBaudRate)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer port.Close()
//
//	up := uploader.New(port)
package serialport
