package constant

// AsciiArtLogo is the application's banner shown in the root help.
const AsciiArtLogo = `
   __ ___   ____ _
  / _' \ \ / / _' |
 | (_| |\ V / (_| |
  \__,_| \_/ \__,_|`
